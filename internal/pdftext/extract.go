package pdftext

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joseph-ayodele/election-extractor/constants"
)

// Config selects the pdftotext binary and bounds how much of a document
// is returned.
type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	MaxPages  int    // 0 = no limit
	PageStart int    // 1-based inclusive; 0 = from first page
	PageEnd   int    // 1-based inclusive; 0 = to last page
}

// Page is one document page as an ordered sequence of non-empty lines.
type Page struct {
	Number int // 1-based, position in the original document
	Lines  []string
}

// Result is the per-document extraction summary.
type Result struct {
	Pages      []Page
	TotalPages int // pages in the document before range limiting
	Duration   time.Duration
}

// Extractor turns a report document into ordered pages of text lines.
// PDF pages come from pdftotext; .txt fixtures split on form feeds.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract picks a strategy based on file extension.
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("starting text extraction", "path", path, "ext", ext)

	var text string
	switch constants.MapExtToFormat(ext) {
	case "PDF":
		// pdftotext -layout -enc UTF-8 -eol unix <path> -
		out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
		if err != nil {
			return Result{}, fmt.Errorf("pdftotext %s: %w (stderr: %s)", path, err, truncate(string(errb), 512))
		}
		text = string(out)
	case "TXT":
		data, err := os.ReadFile(path)
		if err != nil {
			return Result{}, fmt.Errorf("read %s: %w", path, err)
		}
		text = string(data)
	default:
		return Result{}, fmt.Errorf("unsupported extension %q, expected one of %v", ext, constants.FileTypes)
	}

	res := e.split(text)
	res.Duration = time.Since(start)
	return res, nil
}

// split cuts extracted text on form feeds and applies the page bounds.
func (e *Extractor) split(text string) Result {
	raw := strings.Split(text, "\f")
	res := Result{TotalPages: len(raw)}

	start, end := 1, len(raw)
	if e.cfg.PageStart > start {
		start = e.cfg.PageStart
	}
	if e.cfg.PageEnd > 0 && e.cfg.PageEnd < end {
		end = e.cfg.PageEnd
	}
	if e.cfg.MaxPages > 0 && end-start+1 > e.cfg.MaxPages {
		end = start + e.cfg.MaxPages - 1
	}

	for pno := start; pno <= end && pno <= len(raw); pno++ {
		page := Page{Number: pno}
		for _, ln := range strings.Split(raw[pno-1], "\n") {
			if ln = strings.TrimSpace(ln); ln != "" {
				page.Lines = append(page.Lines, ln)
			}
		}
		res.Pages = append(res.Pages, page)
	}
	return res
}
