package dircheck

import (
	"strings"
	"testing"
)

func TestWriteRecordsCSV(t *testing.T) {
	records := []Record{
		rec("Alice", "a.com", "f1.csv", 0),
		rec("Bob", "b.com", "f2.csv", 1),
	}

	var sb strings.Builder
	if err := WriteRecordsCSV(&sb, records); err != nil {
		t.Fatalf("WriteRecordsCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0] != "Type,DisplayName,Name,Domain" {
		t.Errorf("header = %q, want fixed target field order", lines[0])
	}
	if lines[1] != "User,,Alice,a.com" {
		t.Errorf("row 1 = %q, want %q", lines[1], "User,,Alice,a.com")
	}
	if strings.Contains(sb.String(), "f1.csv") {
		t.Error("provenance fields must not appear in the export")
	}
}

func TestWriteRecordsCSV_Empty(t *testing.T) {
	var sb strings.Builder
	if err := WriteRecordsCSV(&sb, nil); err != nil {
		t.Fatalf("WriteRecordsCSV() error = %v", err)
	}
	if strings.TrimRight(sb.String(), "\n") != "Type,DisplayName,Name,Domain" {
		t.Errorf("empty export = %q, want header only", sb.String())
	}
}

func TestWriteGroupsCSV(t *testing.T) {
	groups := FindDuplicates([]Record{
		rec("Alice", "a.com", "f1.csv", 0),
		rec("Bob", "a.com", "f1.csv", 0),
		rec("alice", "b.com", "f2.csv", 1),
	})

	var sb strings.Builder
	if err := WriteGroupsCSV(&sb, groups); err != nil {
		t.Fatalf("WriteGroupsCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	// Header plus the two alice members; Bob is not a duplicate.
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), sb.String())
	}
	if !strings.Contains(lines[1], "Alice") || !strings.Contains(lines[2], "alice") {
		t.Errorf("member order not preserved: %v", lines[1:])
	}
}
