package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joseph-ayodele/election-extractor/internal/common"
	"github.com/joseph-ayodele/election-extractor/internal/parse"
	"github.com/joseph-ayodele/election-extractor/internal/pdftext"
	"github.com/joseph-ayodele/election-extractor/internal/runconfig"
)

// parsepdf runs the extractor chain against a single report and dumps
// per-document stats, useful when tuning patterns against a new layout.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "parsepdf <report.pdf>")
		os.Exit(2)
	}
	path := os.Args[1]

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg := common.LoadConfig()
	extractor := pdftext.NewExtractor(pdftext.Config{
		Pdftotext: cfg.Extract.Pdftotext,
		MaxPages:  cfg.Extract.MaxPages,
		PageStart: cfg.Extract.PageStart,
		PageEnd:   cfg.Extract.PageEnd,
	}, logger)

	start := time.Now()
	res, err := extractor.Extract(ctx, path)
	if err != nil {
		logger.Error("text extraction failed", "path", path, "error", err)
		os.Exit(1)
	}

	parser := parse.NewParser(logger, &runconfig.Overrides{}, cfg.Extract.HeaderWindow)
	doc := parser.ParseDocument(res.Pages, filepath.Base(path))

	logger.Info("document parsed",
		"path", path,
		"pages", len(res.Pages),
		"total_pages", res.TotalPages,
		"date", doc.Event.Date,
		"county", doc.Event.County,
		"precinct_headers", doc.Stats.PrecinctHeaders,
		"precincts", doc.Stats.PrecinctsClosed,
		"discarded", doc.Stats.PrecinctsDiscarded,
		"contests", doc.Stats.ContestsClosed,
		"candidates", doc.Stats.CandidateRows,
		"rows", len(doc.Rows),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
