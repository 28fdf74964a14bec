package dircheck

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/JonMunkholm/DirCheck/internal/logging"
	"github.com/JonMunkholm/DirCheck/internal/tabular"
)

// ProcessBatch runs the full pipeline over tables in input order and
// returns the combined records, duplicate groups, and summaries.
//
// Tables are processed strictly sequentially; the combined record list
// preserves table order then row order, so repeated runs over the same
// input produce identical output. The fold is pure: no state outlives
// the call, and a new run fully replaces any prior run's output.
func ProcessBatch(ctx context.Context, tables []*tabular.Table) (*Result, error) {
	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	log := logging.FromContext(ctx)

	summary := RunSummary{
		RunID:      runID,
		TotalFiles: len(tables),
	}

	var records []Record

	for fileIdx, t := range tables {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("batch cancelled at file %d (%s): %w", fileIdx, t.Name, err)
		}

		idx := BuildFieldIndex(t.Columns)
		fs := summarizeColumns(t, fileIdx, idx)
		kindCol, hasKind := kindColumn(t.Columns)
		fs.HasTypeField = hasKind

		for _, row := range t.Rows {
			fs.TotalRows++
			if hasKind && !retainRow(row, kindCol) {
				continue
			}
			records = append(records, extractRecord(row, idx, t.Name, fileIdx))
			fs.RetainedRows++
		}

		summary.TotalOriginalRecords += fs.TotalRows
		summary.Files = append(summary.Files, fs)

		log.Debug("file processed",
			"file", t.Name,
			"rows", fs.TotalRows,
			"retained", fs.RetainedRows,
			"has_type_field", fs.HasTypeField,
			"missing_fields", fs.MissingFields,
		)
	}

	for _, rec := range records {
		if rec.Fields[IdentityField] != "" {
			summary.HasNameField = true
			break
		}
	}

	var groups []DuplicateGroup
	if summary.HasNameField {
		groups = FindDuplicates(records)
	}

	summary.TotalRecords = len(records)
	summary.DuplicateGroups = len(groups)
	for _, g := range groups {
		summary.DuplicateCount += len(g.Members)
	}

	log.Info("batch complete",
		"files", summary.TotalFiles,
		"records", summary.TotalRecords,
		"original_records", summary.TotalOriginalRecords,
		"duplicate_groups", summary.DuplicateGroups,
		"duplicate_records", summary.DuplicateCount,
	)

	return &Result{Records: records, Groups: groups, Summary: summary}, nil
}

// summarizeColumns builds the column-level parts of a FileSummary:
// which target fields the table's raw column list can supply.
func summarizeColumns(t *tabular.Table, fileIdx int, idx FieldIndex) FileSummary {
	fs := FileSummary{
		File:      t.Name,
		FileIndex: fileIdx,
		Columns:   t.Columns,
		Warnings:  t.Warnings,
	}

	for _, field := range TargetFields {
		if _, ok := idx[field]; ok {
			fs.FoundFields = append(fs.FoundFields, field)
		} else {
			fs.MissingFields = append(fs.MissingFields, field)
		}
	}
	return fs
}
