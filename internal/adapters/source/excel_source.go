package source

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mikey/lead-triage/internal/core"
	"github.com/mikey/lead-triage/internal/utils"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ExcelSource reads leads from an .xlsx workbook
type ExcelSource struct {
	sheet         string
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewExcelSource creates an Excel source. An empty sheet selects the first
// sheet of the workbook.
func NewExcelSource(sheet string, logger *zap.Logger, textProcessor *utils.TextProcessor) *ExcelSource {
	return &ExcelSource{
		sheet:         sheet,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// Load parses the workbook. The first row of the sheet is the header.
func (s *ExcelSource) Load(r io.Reader) (*core.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: open workbook: %w", core.ErrLoadFailed, err)
	}
	defer func() { _ = f.Close() }()

	sheet, err := s.resolveSheet(f)
	if err != nil {
		return nil, err
	}

	display, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %w", core.ErrLoadFailed, sheet, err)
	}
	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %w", core.ErrLoadFailed, sheet, err)
	}

	table := &core.Table{Source: sheet}
	if len(display) == 0 {
		s.logger.Warn("Sheet is empty", zap.String("sheet", sheet))
		return table, nil
	}

	table.Columns = normalizeHeader(display[0], maxWidth(display))
	table.Records = make([]core.Record, 0, len(display)-1)

	for i := 1; i < len(display); i++ {
		var rawRow []string
		if i < len(raw) {
			rawRow = raw[i]
		}

		fields := make(map[string]core.Value, len(table.Columns))
		for c, name := range table.Columns {
			cell, err := excelize.CoordinatesToCellName(c+1, i+1)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", core.ErrLoadFailed, err)
			}
			fields[name] = s.cellValue(f, sheet, cell, name, cellAt(display[i], c), cellAt(rawRow, c))
		}
		table.Records = append(table.Records, core.Record{Row: i + 1, Fields: fields})
	}

	s.logger.Debug("Loaded workbook",
		zap.String("sheet", sheet),
		zap.Int("columns", len(table.Columns)),
		zap.Int("rows", len(table.Records)))

	return table, nil
}

func (s *ExcelSource) resolveSheet(f *excelize.File) (string, error) {
	if s.sheet != "" {
		idx, err := f.GetSheetIndex(s.sheet)
		if err != nil || idx < 0 {
			return "", fmt.Errorf("%w: sheet %q not found", core.ErrLoadFailed, s.sheet)
		}
		return s.sheet, nil
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("%w: workbook has no sheets", core.ErrLoadFailed)
	}
	return sheets[0], nil
}

// cellValue types a cell. Numbers whose displayed text differs from the
// stored value (dates, custom formats) keep the displayed text, except in
// the Remarks column where any number stays numeric and is never matched.
func (s *ExcelSource) cellValue(f *excelize.File, sheet, cell, column, display, raw string) core.Value {
	if display == "" && raw == "" {
		return nil
	}

	typ, err := f.GetCellType(sheet, cell)
	if err != nil {
		return s.textProcessor.SanitizeUTF8(display)
	}

	switch typ {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true")
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return s.textProcessor.SanitizeUTF8(display)
		}
		if display == raw || column == core.ColumnRemarks {
			return n
		}
		if d, err := strconv.ParseFloat(display, 64); err == nil && d == n {
			return n
		}
		return display
	default:
		return s.textProcessor.SanitizeUTF8(display)
	}
}
