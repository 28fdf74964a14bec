package dircheck

import (
	"testing"

	"github.com/JonMunkholm/DirCheck/internal/tabular"
)

func TestBuildFieldIndex(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		want    map[string]string
	}{
		{
			name:    "exact match",
			columns: []string{"Type", "DisplayName", "Name", "Domain"},
			want:    map[string]string{FieldKind: "Type", FieldDisplay: "DisplayName", FieldName: "Name", FieldDomain: "Domain"},
		},
		{
			name:    "case insensitive",
			columns: []string{"TYPE", "displayname", "nAmE", "DOMAIN"},
			want:    map[string]string{FieldKind: "TYPE", FieldDisplay: "displayname", FieldName: "nAmE", FieldDomain: "DOMAIN"},
		},
		{
			name:    "first column wins on duplicates",
			columns: []string{"name", "NAME", "Name"},
			want:    map[string]string{FieldName: "name"},
		},
		{
			name:    "unrelated columns ignored",
			columns: []string{"Email", "Department", "Name"},
			want:    map[string]string{FieldName: "Name"},
		},
		{
			name:    "no matches",
			columns: []string{"Email", "Department"},
			want:    map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildFieldIndex(tt.columns)
			if len(got) != len(tt.want) {
				t.Fatalf("BuildFieldIndex(%v) = %v, want %v", tt.columns, got, tt.want)
			}
			for field, col := range tt.want {
				if got[field] != col {
					t.Errorf("index[%s] = %q, want %q", field, got[field], col)
				}
			}
		})
	}
}

func TestExtractRecord(t *testing.T) {
	columns := []string{"Type", "Name", "Domain"}
	idx := BuildFieldIndex(columns)

	row := tabular.Row{"Type": "User", "Name": "Alice", "Domain": "a.com"}
	rec := extractRecord(row, idx, "export.csv", 3)

	if rec.SourceFile != "export.csv" || rec.FileIndex != 3 {
		t.Errorf("provenance = (%q, %d), want (export.csv, 3)", rec.SourceFile, rec.FileIndex)
	}
	if len(rec.Fields) != len(TargetFields) {
		t.Fatalf("len(Fields) = %d, want %d", len(rec.Fields), len(TargetFields))
	}
	if rec.Fields[FieldName] != "Alice" {
		t.Errorf("Fields[Name] = %q, want Alice", rec.Fields[FieldName])
	}
	// DisplayName column absent from the table
	if rec.Fields[FieldDisplay] != "" {
		t.Errorf("Fields[DisplayName] = %q, want empty", rec.Fields[FieldDisplay])
	}
}

// Re-extracting an already-normalized record yields the same values.
func TestExtractRecord_Idempotent(t *testing.T) {
	idx := BuildFieldIndex([]string{"Type", "DisplayName", "Name", "Domain"})
	first := extractRecord(tabular.Row{"Type": "User", "Name": "Alice", "Domain": "a.com"}, idx, "f.csv", 0)

	asRow := make(tabular.Row, len(first.Fields))
	for k, v := range first.Fields {
		asRow[k] = v
	}

	second := extractRecord(asRow, BuildFieldIndex(TargetFields), "f.csv", 0)
	for _, field := range TargetFields {
		if second.Fields[field] != first.Fields[field] {
			t.Errorf("Fields[%s] = %q after re-extraction, want %q", field, second.Fields[field], first.Fields[field])
		}
	}
}

func TestCoerceString(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"nil", nil, ""},
		{"string", "Alice", "Alice"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"integer float", float64(42), "42"},
		{"decimal float", 1.5, "1.5"},
		{"large float no exponent", float64(1000000), "1000000"},
		{"int", 7, "7"},
		{"int64", int64(-3), "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := coerceString(tt.input); got != tt.want {
				t.Errorf("coerceString(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
