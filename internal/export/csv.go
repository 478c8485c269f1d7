package export

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joseph-ayodele/election-extractor/internal/entity"
)

// CSVWriter buffers consolidated rows and writes them to the artifact in
// batches. The file is created lazily on the first flush, so a run that
// produces no rows never disturbs a previous artifact.
type CSVWriter struct {
	path      string
	batchSize int
	logger    *slog.Logger

	buffer  []entity.Row
	file    *os.File
	w       *csv.Writer
	written int
}

func NewCSVWriter(path string, batchSize int, logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	if batchSize <= 0 {
		batchSize = 300
	}
	return &CSVWriter{path: path, batchSize: batchSize, logger: logger}
}

// Add buffers rows, flushing whenever the batch size is reached.
func (c *CSVWriter) Add(rows ...entity.Row) error {
	c.buffer = append(c.buffer, rows...)
	if len(c.buffer) >= c.batchSize {
		return c.flush()
	}
	return nil
}

// Rows returns the number of rows written so far, flushed or not.
func (c *CSVWriter) Rows() int {
	return c.written + len(c.buffer)
}

// Close flushes remaining rows and closes the artifact.
func (c *CSVWriter) Close() error {
	if err := c.flush(); err != nil {
		return err
	}
	if c.file == nil {
		return nil
	}
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		return fmt.Errorf("csv flush: %w", err)
	}
	if err := c.file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", c.path, err)
	}
	c.logger.Info("export.csv.ok", "path", c.path, "rows", c.written)
	c.file = nil
	return nil
}

func (c *CSVWriter) flush() error {
	if len(c.buffer) == 0 {
		return nil
	}
	if c.file == nil {
		if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
			return fmt.Errorf("mkdir for %s: %w", c.path, err)
		}
		f, err := os.Create(c.path)
		if err != nil {
			return fmt.Errorf("create %s: %w", c.path, err)
		}
		c.file = f
		c.w = csv.NewWriter(f)
		if err := c.w.Write(entity.RowHeaders); err != nil {
			return fmt.Errorf("csv header: %w", err)
		}
	}
	for i := range c.buffer {
		if err := c.w.Write(c.buffer[i].Values()); err != nil {
			return fmt.Errorf("csv row: %w", err)
		}
	}
	c.written += len(c.buffer)
	c.buffer = c.buffer[:0]
	return nil
}
