package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/election-extractor/internal/entity"
)

// ResultsXLSX renders the consolidated rows as an XLSX workbook and
// returns its bytes. The CSV remains the canonical artifact; the
// workbook is a convenience variant with the same columns.
func ResultsXLSX(rows []entity.Row, logger *slog.Logger) ([]byte, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Results"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range entity.RowHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for r := range rows {
		for c, v := range rows[r].Values() {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	// Widen the text-heavy columns
	_ = f.SetColWidth(sheet, "A", "E", 16) // event fields
	_ = f.SetColWidth(sheet, "K", "M", 34) // office, modifier, raw title
	_ = f.SetColWidth(sheet, "S", "S", 28) // candidate
	_ = f.SetColWidth(sheet, "Z", "Z", 30) // source file

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	logger.Info("export.xlsx.ok",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
