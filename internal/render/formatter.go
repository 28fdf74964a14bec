// Package render provides formatters for presenting batch results.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"

	"github.com/JonMunkholm/DirCheck/internal/dircheck"
)

// Format types for output.
type Format string

const (
	// FormatTable represents human-readable table output.
	FormatTable Format = "table"
	// FormatJSON represents JSON output.
	FormatJSON Format = "json"
	// FormatYAML represents YAML output.
	FormatYAML Format = "yaml"
	// FormatCSV represents delimited-text output of the record list.
	FormatCSV Format = "csv"
)

// Formatter renders a batch result to a writer.
type Formatter interface {
	Format(w io.Writer, res *dircheck.Result) error
}

// NewFormatter creates the appropriate formatter for a format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatCSV:
		return &CSVFormatter{}
	default:
		return &TableFormatter{}
	}
}

// DetectFormat auto-detects the format based on terminal and environment.
func DetectFormat(explicit string) Format {
	if explicit != "" {
		return Format(strings.ToLower(explicit))
	}

	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatTable
	}

	// Default to JSON for pipes/redirects.
	return FormatJSON
}

// ParseFormat converts a string to a Format with validation.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	switch format {
	case FormatTable, FormatJSON, FormatYAML, FormatCSV, "":
		return format, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be one of: table, json, yaml, csv", s)
	}
}

// JSONFormatter outputs the full result as JSON.
type JSONFormatter struct {
	Indent string
}

// Format implements the Formatter interface for JSON output.
func (f *JSONFormatter) Format(w io.Writer, res *dircheck.Result) error {
	encoder := json.NewEncoder(w)
	if f.Indent != "" {
		encoder.SetIndent("", f.Indent)
	}
	return encoder.Encode(res)
}

// YAMLFormatter outputs the full result as YAML.
type YAMLFormatter struct{}

// Format implements the Formatter interface for YAML output.
func (f *YAMLFormatter) Format(w io.Writer, res *dircheck.Result) error {
	data, err := yaml.MarshalWithOptions(res,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// CSVFormatter outputs the combined record list as delimited text.
type CSVFormatter struct {
	// DuplicatesOnly restricts output to members of duplicate groups.
	DuplicatesOnly bool
}

// Format implements the Formatter interface for CSV output.
func (f *CSVFormatter) Format(w io.Writer, res *dircheck.Result) error {
	if f.DuplicatesOnly {
		return dircheck.WriteGroupsCSV(w, res.Groups)
	}
	return dircheck.WriteRecordsCSV(w, res.Records)
}

// TableFormatter renders a per-file summary and the duplicate groups as
// terminal tables.
type TableFormatter struct{}

// Format implements the Formatter interface for table output.
func (f *TableFormatter) Format(w io.Writer, res *dircheck.Result) error {
	s := res.Summary

	fmt.Fprintf(w, "Files: %d   Records: %d/%d retained   Duplicate groups: %d (%d records)\n\n",
		s.TotalFiles, s.TotalRecords, s.TotalOriginalRecords, s.DuplicateGroups, s.DuplicateCount)

	if err := f.writeFileTable(w, s.Files); err != nil {
		return err
	}

	if !s.HasNameField {
		fmt.Fprintf(w, "\nNo %s column found in any file; duplicate detection disabled.\n", dircheck.IdentityField)
		return nil
	}

	if len(res.Groups) == 0 {
		fmt.Fprintln(w, "\nNo duplicates found.")
		return nil
	}

	fmt.Fprintln(w)
	return f.writeGroupTable(w, res.Groups)
}

func (f *TableFormatter) writeFileTable(w io.Writer, files []dircheck.FileSummary) error {
	table := tablewriter.NewTable(w)
	table.Header("File", "Rows", "Retained", "Type Column", "Missing Fields", "Warnings")

	for _, fs := range files {
		typeCol := "yes"
		if !fs.HasTypeField {
			typeCol = "no (all rows kept)"
		}
		if err := table.Append(
			fs.File,
			strconv.Itoa(fs.TotalRows),
			strconv.Itoa(fs.RetainedRows),
			typeCol,
			strings.Join(fs.MissingFields, ", "),
			strconv.Itoa(len(fs.Warnings)),
		); err != nil {
			return err
		}
	}

	return table.Render()
}

func (f *TableFormatter) writeGroupTable(w io.Writer, groups []dircheck.DuplicateGroup) error {
	table := tablewriter.NewTable(w)
	table.Header("Name", "Count", "Files", "Domains")

	for _, g := range groups {
		var files, domains []string
		for _, m := range g.Members {
			files = appendUnique(files, m.Record.SourceFile)
			if d := m.Record.Fields[dircheck.FieldDomain]; d != "" {
				domains = appendUnique(domains, d)
			}
		}
		if err := table.Append(
			g.Display,
			strconv.Itoa(len(g.Members)),
			strings.Join(files, ", "),
			strings.Join(domains, ", "),
		); err != nil {
			return err
		}
	}

	return table.Render()
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
