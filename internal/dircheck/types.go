package dircheck

// Target fields extracted from every input table. The set is fixed at
// build time; matching against raw column names is case-insensitive.
const (
	FieldKind    = "Type"
	FieldDisplay = "DisplayName"
	FieldName    = "Name"
	FieldDomain  = "Domain"
)

// TargetFields lists the target fields in export column order.
var TargetFields = []string{FieldKind, FieldDisplay, FieldName, FieldDomain}

// TargetKind is the discriminator value (lowercased) that marks a row as
// a user entry.
const TargetKind = "user"

// IdentityField is the field duplicate detection keys on.
const IdentityField = FieldName

// Record is one normalized row. Fields holds exactly the target field
// keys; a field whose column was absent in the source table is the empty
// string. Records are created once during extraction and never mutated.
type Record struct {
	Fields     map[string]string `json:"fields"`
	SourceFile string            `json:"sourceFile"`
	FileIndex  int               `json:"fileIndex"`
}

// FileSummary describes one input table before and after filtering.
type FileSummary struct {
	File          string   `json:"file"`
	FileIndex     int      `json:"fileIndex"`
	TotalRows     int      `json:"totalRows"`
	RetainedRows  int      `json:"retainedRows"`
	HasTypeField  bool     `json:"hasTypeField"`
	FoundFields   []string `json:"foundFields"`
	MissingFields []string `json:"missingFields"`
	Columns       []string `json:"columns"`
	Warnings      []string `json:"warnings,omitempty"`
}

// GroupMember is a record together with its position in the combined
// record list.
type GroupMember struct {
	Position int    `json:"position"`
	Record   Record `json:"record"`
}

// DuplicateGroup holds all records sharing one normalized identity key.
// Emitted groups always have at least two members; Display is the
// unnormalized identity value of the first member.
type DuplicateGroup struct {
	Key     string        `json:"key"`
	Display string        `json:"display"`
	Members []GroupMember `json:"members"`
}

// RunSummary aggregates counts across the whole batch. It is derived,
// read-only, and recomputed on every run.
type RunSummary struct {
	RunID                string        `json:"runId"`
	TotalFiles           int           `json:"totalFiles"`
	TotalRecords         int           `json:"totalRecords"`
	TotalOriginalRecords int           `json:"totalOriginalRecords"`
	HasNameField         bool          `json:"hasNameField"`
	DuplicateCount       int           `json:"duplicateCount"`
	DuplicateGroups      int           `json:"duplicateGroups"`
	Files                []FileSummary `json:"files"`
}

// Result is the complete output of one batch run.
type Result struct {
	Records []Record         `json:"records"`
	Groups  []DuplicateGroup `json:"duplicateGroups"`
	Summary RunSummary       `json:"summary"`
}
