package dircheck

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/JonMunkholm/DirCheck/internal/tabular"
)

// FieldIndex maps each target field to the raw column name that supplies
// it. Built once per table; fields with no matching column are absent.
type FieldIndex map[string]string

// NormalizeColumnName produces the canonical form used for column
// matching: trimmed and lowercased.
func NormalizeColumnName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// BuildFieldIndex resolves each target field to the first raw column
// whose normalized name matches it. Column order decides ties.
func BuildFieldIndex(columns []string) FieldIndex {
	idx := make(FieldIndex, len(TargetFields))
	for _, col := range columns {
		key := NormalizeColumnName(col)
		for _, field := range TargetFields {
			if strings.ToLower(field) != key {
				continue
			}
			if _, seen := idx[field]; !seen {
				idx[field] = col
			}
		}
	}
	return idx
}

// extractRecord maps one raw row to a Record. Absent columns yield empty
// strings; provenance is always populated. Pure, no side effects.
func extractRecord(row tabular.Row, idx FieldIndex, file string, fileIdx int) Record {
	fields := make(map[string]string, len(TargetFields))
	for _, field := range TargetFields {
		col, ok := idx[field]
		if !ok {
			fields[field] = ""
			continue
		}
		fields[field] = coerceString(row[col])
	}
	return Record{Fields: fields, SourceFile: file, FileIndex: fileIdx}
}

// coerceString converts a raw cell value to its canonical textual form.
// Numbers render without exponent or trailing zeros, booleans as
// "true"/"false".
func coerceString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprintf("%v", val)
	}
}
