package export

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/mikey/lead-triage/internal/core"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const defaultSheet = "Sheet1"

// ExcelExporter writes processed leads as .xlsx workbooks
type ExcelExporter struct {
	threshold int
	logger    *zap.Logger
}

// NewExcelExporter creates an Excel exporter. Leads scoring above
// threshold are high priority.
func NewExcelExporter(threshold int, logger *zap.Logger) *ExcelExporter {
	return &ExcelExporter{
		threshold: threshold,
		logger:    logger,
	}
}

// ExportAll writes the categorized leads sheet and a summary sheet with a
// distribution chart
func (e *ExcelExporter) ExportAll(w io.Writer, t *core.ProcessedTable) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(defaultSheet, SheetLeads); err != nil {
		return fmt.Errorf("failed to name leads sheet: %w", err)
	}
	if err := e.writeLeads(f, SheetLeads, exportColumns(t), t.Leads); err != nil {
		return err
	}

	if _, err := f.NewSheet(SheetSummary); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	summary := core.Summarize(t)
	if err := writeSummary(f, summary); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	e.logger.Info("Exported categorized leads",
		zap.String("run_id", t.RunID),
		zap.Int("rows", len(t.Leads)),
		zap.Int("categories", len(summary)))
	return nil
}

// ExportHighPriority writes the leads scoring above the threshold
func (e *ExcelExporter) ExportHighPriority(w io.Writer, t *core.ProcessedTable) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(defaultSheet, SheetHighPriority); err != nil {
		return fmt.Errorf("failed to name high priority sheet: %w", err)
	}
	leads := highPriority(t, e.threshold)
	if err := e.writeLeads(f, SheetHighPriority, exportColumns(t), leads); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	e.logger.Info("Exported high priority leads",
		zap.String("run_id", t.RunID),
		zap.Int("threshold", e.threshold),
		zap.Int("rows", len(leads)))
	return nil
}

func (e *ExcelExporter) writeLeads(f *excelize.File, sheet string, columns []string, leads []core.Lead) error {
	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, l := range leads {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := rowValues(l, columns)
		for c, v := range values {
			text, ok := v.(string)
			if !ok || utf8.RuneCountInString(text) <= excelize.TotalCellChars {
				continue
			}
			e.logger.Warn("Truncating cell over the xlsx length limit",
				zap.Int("row", l.Row),
				zap.String("column", columns[c]),
				zap.Int("length", utf8.RuneCountInString(text)),
				zap.Int("limit", excelize.TotalCellChars))
			values[c] = string([]rune(text)[:excelize.TotalCellChars])
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", l.Row, err)
		}
	}
	return nil
}

func writeSummary(f *excelize.File, summary []core.CategoryCount) error {
	header := []any{"Category", "Count", "Percentage"}
	if err := f.SetSheetRow(SheetSummary, "A1", &header); err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}

	for i, line := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{string(line.Category), line.Count, line.Percentage.InexactFloat64()}
		if err := f.SetSheetRow(SheetSummary, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	if len(summary) == 0 {
		return nil
	}

	last := len(summary) + 1
	err := f.AddChart(SheetSummary, "E2", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$B$1", SheetSummary),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", SheetSummary, last),
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", SheetSummary, last),
		}},
		Title:    []excelize.RichTextRun{{Text: "Lead Distribution by Category"}},
		Legend:   excelize.ChartLegend{Position: "none"},
		PlotArea: excelize.ChartPlotArea{ShowVal: true},
	})
	if err != nil {
		return fmt.Errorf("failed to add distribution chart: %w", err)
	}
	return nil
}
