// Package dircheck implements the record pipeline for user-directory
// export audits.
//
// This package contains all domain logic independent of any UI or
// transport layer. It can be used by the CLI, scripts, or tests without
// modification.
//
// # Pipeline
//
// A run is a single-shot, stateless transformation over an ordered list
// of parsed tables:
//
//  1. Per table, a field index maps each target field to the first raw
//     column whose name matches case-insensitively.
//  2. Rows are filtered on the Type discriminator column when present;
//     tables without it contribute every row.
//  3. Retained rows become records carrying exactly the target fields
//     plus provenance (source file name and index).
//  4. Records are grouped by the trimmed, lowercased Name value; groups
//     with two or more members are reported as duplicates.
//
// [ProcessBatch] is the single entry point. Its result owns the combined
// record list, duplicate groups, and per-file plus run-level summaries.
//
// # Error Handling
//
// Missing columns are never errors: extraction degrades to empty field
// values and filtering to a no-op. A batch only fails on context
// cancellation; unusable input files must be rejected by the caller
// before the batch is assembled.
package dircheck
