package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joseph-ayodele/election-extractor/internal/batch"
	"github.com/joseph-ayodele/election-extractor/internal/common"
	"github.com/joseph-ayodele/election-extractor/internal/export"
	"github.com/joseph-ayodele/election-extractor/internal/parse"
	"github.com/joseph-ayodele/election-extractor/internal/pdftext"
	"github.com/joseph-ayodele/election-extractor/internal/runconfig"
	"github.com/joseph-ayodele/election-extractor/internal/store"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		dir       = flag.String("dir", "", "directory of report PDFs to process (required)")
		out       = flag.String("out", "", "output CSV path (optional, defaults to OUTPUT_CSV)")
		xlsxOut   = flag.String("xlsx", "", "also write an XLSX workbook to this path (optional)")
		overrides = flag.String("overrides", "", "path to a JSON overrides file (optional)")
		history   = flag.Int("history", 0, "print the N most recent runs and exit")
		debug     = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	// Setup logger
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()
	if *out != "" {
		cfg.Output.CSVPath = *out
	}
	if *xlsxOut != "" {
		cfg.Output.XLSXPath = *xlsxOut
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Open the audit store
	if err := os.MkdirAll(filepath.Dir(cfg.Store.SQLitePath), 0o755); err != nil {
		logger.Error("failed to create audit directory", "error", err)
		os.Exit(1)
	}
	audit, err := store.OpenSQLite(ctx, cfg.Store.SQLitePath, logger)
	if err != nil {
		logger.Error("failed to open audit store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := audit.Close(); cerr != nil {
			logger.Error("close audit store", "error", cerr)
		}
	}()

	if *history > 0 {
		runs, err := audit.RecentRuns(ctx, *history)
		if err != nil {
			logger.Error("failed to list runs", "error", err)
			os.Exit(1)
		}
		for _, r := range runs {
			fmt.Printf("%s  %-7s docs=%d failures=%d rows=%d  %s\n",
				r.StartedAt, r.Status, r.Documents, r.Failures, r.Rows, r.InputDir)
		}
		return
	}

	// Validate required flags
	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	// Load operator overrides
	ov, err := runconfig.Load(*overrides)
	if err != nil {
		logger.Error("failed to load overrides", "path", *overrides, "error", err)
		os.Exit(1)
	}

	// Optional Postgres row sink
	var sink *store.RowSink
	if cfg.Store.PostgresDSN != "" {
		sink, err = store.OpenPostgres(ctx, cfg.Store.PostgresDSN, logger)
		if err != nil {
			logger.Error("failed to open row sink", "error", err)
			os.Exit(1)
		}
		defer sink.Close()
	}

	extractor := pdftext.NewExtractor(pdftext.Config{
		Pdftotext: cfg.Extract.Pdftotext,
		MaxPages:  cfg.Extract.MaxPages,
		PageStart: cfg.Extract.PageStart,
		PageEnd:   cfg.Extract.PageEnd,
	}, logger)

	consolidator := &batch.Consolidator{
		Logger:    logger,
		Extractor: extractor,
		Parser:    parse.NewParser(logger, ov, cfg.Extract.HeaderWindow),
		Audit:     audit,
		Sink:      sink,
	}

	logger.Info("starting batch", "dir", *dir, "out", cfg.Output.CSVPath)
	sum, err := consolidator.Run(ctx, *dir)
	if err != nil {
		if errors.Is(err, common.ErrNoDocuments) || errors.Is(err, common.ErrNoRows) {
			printError("Error: %v\n", err)
		} else {
			logger.Error("batch failed", "error", err)
		}
		os.Exit(1)
	}

	// Write the CSV artifact
	writer := export.NewCSVWriter(cfg.Output.CSVPath, cfg.Output.BatchSize, logger)
	if err := writer.Add(sum.Rows...); err != nil {
		logger.Error("failed to write output", "error", err)
		os.Exit(1)
	}
	if err := writer.Close(); err != nil {
		logger.Error("failed to close output", "error", err)
		os.Exit(1)
	}

	// Optional workbook variant
	if cfg.Output.XLSXPath != "" {
		xlsxBytes, err := export.ResultsXLSX(sum.Rows, logger)
		if err != nil {
			logger.Error("failed to build workbook", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(cfg.Output.XLSXPath, xlsxBytes, 0o644); err != nil {
			logger.Error("failed to write workbook", "error", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Batch complete!\n")
	fmt.Printf("- Documents processed: %d\n", sum.Documents)
	fmt.Printf("- Failures: %d\n", sum.Failures)
	fmt.Printf("- Rows: %d\n", len(sum.Rows))
	fmt.Printf("- Output: %s\n", cfg.Output.CSVPath)
}
