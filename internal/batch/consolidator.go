package batch

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/election-extractor/internal/common"
	"github.com/joseph-ayodele/election-extractor/internal/entity"
	"github.com/joseph-ayodele/election-extractor/internal/ingest"
	"github.com/joseph-ayodele/election-extractor/internal/parse"
	"github.com/joseph-ayodele/election-extractor/internal/pdftext"
	"github.com/joseph-ayodele/election-extractor/internal/store"
)

// LineExtractor is the document-text collaborator: path -> pages of lines.
type LineExtractor interface {
	Extract(ctx context.Context, path string) (pdftext.Result, error)
}

// Consolidator drives the extractor chain once per input document and
// accumulates every document's rows into one ordered sequence.
type Consolidator struct {
	Logger    *slog.Logger
	Extractor LineExtractor
	Parser    *parse.Parser
	Audit     *store.AuditStore // optional
	Sink      *store.RowSink    // optional
}

// Summary is the outcome of one batch run.
type Summary struct {
	RunID     uuid.UUID
	Documents int
	Failures  int
	Rows      []entity.Row
}

// Run processes every document under inputDir in name order. Documents
// that fail are skipped and logged; the batch itself fails only when no
// documents exist or none of them yields a row.
func (c *Consolidator) Run(ctx context.Context, inputDir string) (*Summary, error) {
	paths, stats, err := ingest.DiscoverDirectory(inputDir, true)
	if err != nil {
		return nil, common.WrapError(err, "discover input")
	}
	if len(paths) == 0 {
		c.Logger.Error("batch.fatal", "reason", "no input documents", "dir", inputDir, "scanned", stats.Scanned)
		return nil, common.ErrNoDocuments
	}

	sum := &Summary{RunID: uuid.New()}
	if c.Audit != nil {
		if err := c.Audit.BeginRun(ctx, sum.RunID, inputDir); err != nil {
			return nil, err
		}
	}
	c.Logger.Info("batch.start", "run_id", sum.RunID, "documents", len(paths))

	for _, path := range paths {
		c.processDocument(ctx, path, sum)
	}

	if len(sum.Rows) == 0 {
		c.Logger.Error("batch.fatal", "reason", "no document yielded any rows",
			"run_id", sum.RunID, "documents", sum.Documents, "failures", sum.Failures)
		c.finishAudit(ctx, sum, "FAILED")
		return sum, common.ErrNoRows
	}

	if c.Sink != nil {
		if err := c.Sink.InsertRows(ctx, sum.RunID, sum.Rows); err != nil {
			// The sink is a mirror; its failure does not fail the batch.
			c.Logger.Error("batch.sink.failed", "run_id", sum.RunID, "error", err)
		}
	}
	c.finishAudit(ctx, sum, "OK")
	c.Logger.Info("batch.done",
		"run_id", sum.RunID, "documents", sum.Documents, "failures", sum.Failures, "rows", len(sum.Rows))
	return sum, nil
}

// processDocument runs extract + parse for one document. Every failure
// is converted into "skip this document" so the batch keeps moving.
func (c *Consolidator) processDocument(ctx context.Context, path string, sum *Summary) {
	source := filepath.Base(path)
	sum.Documents++

	res, err := c.Extractor.Extract(ctx, path)
	if err != nil {
		sum.Failures++
		c.Logger.Error("batch.document.failed", "file", source, "error", err)
		c.recordDocument(ctx, sum.RunID, store.DocumentOutcome{SourceFile: source, Err: err.Error()})
		return
	}

	doc := c.Parser.ParseDocument(res.Pages, source)
	if doc.Stats.PrecinctsClosed == 0 {
		c.Logger.Warn("batch.document.empty", "file", source, "pages", len(res.Pages))
	}
	sum.Rows = append(sum.Rows, doc.Rows...)

	c.Logger.Info("batch.document.ok",
		"file", source,
		"pages", len(res.Pages),
		"precincts", doc.Stats.PrecinctsClosed,
		"contests", doc.Stats.ContestsClosed,
		"rows", len(doc.Rows),
	)
	c.recordDocument(ctx, sum.RunID, store.DocumentOutcome{
		SourceFile: source,
		Pages:      len(res.Pages),
		Precincts:  doc.Stats.PrecinctsClosed,
		Contests:   doc.Stats.ContestsClosed,
		Rows:       len(doc.Rows),
	})
}

func (c *Consolidator) recordDocument(ctx context.Context, runID uuid.UUID, out store.DocumentOutcome) {
	if c.Audit == nil {
		return
	}
	if err := c.Audit.RecordDocument(ctx, runID, out); err != nil {
		c.Logger.Error("batch.audit.failed", "file", out.SourceFile, "error", err)
	}
}

func (c *Consolidator) finishAudit(ctx context.Context, sum *Summary, status string) {
	if c.Audit == nil {
		return
	}
	if err := c.Audit.FinishRun(ctx, sum.RunID, status, sum.Documents, sum.Failures, len(sum.Rows)); err != nil {
		c.Logger.Error("batch.audit.failed", "run_id", sum.RunID, "error", err)
	}
}
