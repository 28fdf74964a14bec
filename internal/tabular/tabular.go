// Package tabular parses raw export files into ordered rows keyed by
// column name. It is the only place that knows about file formats; the
// pipeline consumes [Table] values and never touches raw bytes.
package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// MaxFileSize is the maximum allowed file size (100MB).
var MaxFileSize int64 = 100 * 1024 * 1024

// MaxWarnings caps how many skipped-row warnings are kept per file.
var MaxWarnings = 100

// Row maps original-case column names to cell values.
// Values from CSV files are always strings; callers that build rows by
// hand may supply numbers or booleans, which the pipeline coerces.
type Row map[string]any

// Table is one parsed input file: an ordered column list plus data rows.
// Warnings records rows that could not be parsed and were skipped.
type Table struct {
	Name     string
	Columns  []string
	Rows     []Row
	Warnings []string
}

// Parse reads CSV content into a Table. The first non-empty row is taken
// as the header. Rows that fail to parse are skipped and recorded as
// warnings; an error is returned only when no header can be found at all.
func Parse(name string, data []byte) (*Table, error) {
	if int64(len(data)) > MaxFileSize {
		return nil, fmt.Errorf("%s: file exceeds %dMB limit", name, MaxFileSize/(1024*1024))
	}

	data = sanitizeUTF8(data)

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	t := &Table{Name: name}

	// Header: first row with any non-empty cell.
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return nil, fmt.Errorf("%s: no header row found", name)
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				t.warn(fmt.Sprintf("line %d: %v", perr.Line, perr.Err))
				continue
			}
			return nil, fmt.Errorf("%s: read header: %w", name, err)
		}
		if isEmptyRow(rec) {
			continue
		}
		t.Columns = make([]string, len(rec))
		for i, h := range rec {
			t.Columns[i] = CleanCell(h)
		}
		break
	}

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				t.warn(fmt.Sprintf("line %d: %v", perr.Line, perr.Err))
				continue
			}
			// Reader is broken beyond a malformed record; keep what parsed.
			t.warn(fmt.Sprintf("read aborted: %v", err))
			break
		}
		if isEmptyRow(rec) {
			continue
		}

		row := make(Row, len(t.Columns))
		for i, col := range t.Columns {
			if i < len(rec) {
				row[col] = CleanCell(rec[i])
			}
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

func (t *Table) warn(msg string) {
	if len(t.Warnings) < MaxWarnings {
		t.Warnings = append(t.Warnings, msg)
	}
}

func isEmptyRow(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
