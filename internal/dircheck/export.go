package dircheck

import (
	"encoding/csv"
	"io"
)

// WriteRecordsCSV serializes records as delimited text. Columns are the
// target fields in fixed order; provenance fields are internal and not
// exported. Pure function of the record list.
func WriteRecordsCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(TargetFields); err != nil {
		return err
	}

	row := make([]string, len(TargetFields))
	for _, rec := range records {
		for i, field := range TargetFields {
			row[i] = rec.Fields[field]
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteGroupsCSV serializes duplicate groups expanded to their member
// records, in group order then member order.
func WriteGroupsCSV(w io.Writer, groups []DuplicateGroup) error {
	var records []Record
	for _, g := range groups {
		for _, m := range g.Members {
			records = append(records, m.Record)
		}
	}
	return WriteRecordsCSV(w, records)
}
