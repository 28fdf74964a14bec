package dircheck

import (
	"strings"

	"github.com/JonMunkholm/DirCheck/internal/tabular"
)

// kindColumn locates the discriminator column in a table's column list.
// Returns the original-case column name and whether it exists.
func kindColumn(columns []string) (string, bool) {
	want := strings.ToLower(FieldKind)
	for _, col := range columns {
		if NormalizeColumnName(col) == want {
			return col, true
		}
	}
	return "", false
}

// retainRow reports whether a row passes the kind filter. The value is
// coerced to its canonical string form before comparison, so numeric or
// boolean discriminator cells compare sanely.
func retainRow(row tabular.Row, col string) bool {
	v := strings.ToLower(strings.TrimSpace(coerceString(row[col])))
	return v == TargetKind
}
