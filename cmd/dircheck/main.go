package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/DirCheck/internal/config"
	"github.com/JonMunkholm/DirCheck/internal/dircheck"
	"github.com/JonMunkholm/DirCheck/internal/logging"
	"github.com/JonMunkholm/DirCheck/internal/render"
	"github.com/JonMunkholm/DirCheck/internal/tabular"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err == nil {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	tabular.MaxFileSize = cfg.Ingest.MaxFileSize
	tabular.MaxWarnings = cfg.Ingest.MaxWarnings

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(cfg).ExecuteContext(ctx); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// newRootCommand builds the dircheck CLI.
func newRootCommand(cfg *config.Config) *cobra.Command {
	var (
		formatFlag     string
		outputPath     string
		duplicatesOnly bool
	)

	cmd := &cobra.Command{
		Use:   "dircheck <file.csv> [file.csv...]",
		Short: "Check user-directory exports for duplicate entries",
		Long: `DirCheck ingests one or more directory export files, keeps the user
entries, and reports names that appear more than once across all files.

Files are processed in the order given; tables without a Type column
contribute all their rows.`,
		Example: `  dircheck export.csv                        # Single file, table output
  dircheck tenant-a.csv tenant-b.csv -f json # Cross-file check, JSON output
  dircheck *.csv -o combined.csv             # Export combined records
  dircheck *.csv -o dupes.csv --duplicates-only`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			if format == "" {
				format = render.DetectFormat(cfg.Output.Format)
			}
			return run(cmd.Context(), args, format, outputPath, duplicatesOnly)
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "output format: table, json, yaml, csv (default: auto-detect)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write combined records as CSV to a file instead of rendering")
	cmd.Flags().BoolVar(&duplicatesOnly, "duplicates-only", false, "limit CSV output to members of duplicate groups")

	return cmd
}

// run parses the input files in the order given, processes the batch,
// and renders or exports the result. A file that yields no usable rows
// aborts the whole run before any summary is produced.
func run(ctx context.Context, paths []string, format render.Format, outputPath string, duplicatesOnly bool) error {
	tables := make([]*tabular.Table, 0, len(paths))

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		t, err := tabular.Parse(path, data)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}

		for _, w := range t.Warnings {
			slog.Warn("skipped unparseable row", "file", path, "detail", w)
		}

		tables = append(tables, t)
	}

	res, err := dircheck.ProcessBatch(ctx, tables)
	if err != nil {
		return err
	}

	if outputPath != "" {
		return writeExport(res, outputPath, duplicatesOnly)
	}

	var formatter render.Formatter
	if format == render.FormatCSV {
		formatter = &render.CSVFormatter{DuplicatesOnly: duplicatesOnly}
	} else {
		formatter = render.NewFormatter(format)
	}

	return formatter.Format(os.Stdout, res)
}

func writeExport(res *dircheck.Result, path string, duplicatesOnly bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if duplicatesOnly {
		err = dircheck.WriteGroupsCSV(f, res.Groups)
	} else {
		err = dircheck.WriteRecordsCSV(f, res.Records)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	slog.Info("export written", "path", path, "duplicates_only", duplicatesOnly)
	return nil
}
