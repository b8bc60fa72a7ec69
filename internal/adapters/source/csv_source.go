package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/mikey/lead-triage/internal/core"
	"github.com/mikey/lead-triage/internal/utils"
	"go.uber.org/zap"
)

const utf8BOM = "\ufeff"

// CSVSource reads leads from comma-separated text. Every non-empty cell is
// text.
type CSVSource struct {
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewCSVSource creates a CSV source
func NewCSVSource(logger *zap.Logger, textProcessor *utils.TextProcessor) *CSVSource {
	return &CSVSource{
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// Load parses r. The first line is the header.
func (s *CSVSource) Load(r io.Reader) (*core.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: parse csv: %w", core.ErrLoadFailed, err)
	}

	table := &core.Table{Source: "csv"}
	if len(rows) == 0 {
		s.logger.Warn("CSV input is empty")
		return table, nil
	}

	if len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], utf8BOM)
	}
	table.Columns = normalizeHeader(rows[0], maxWidth(rows))
	table.Records = make([]core.Record, 0, len(rows)-1)

	for i := 1; i < len(rows); i++ {
		fields := make(map[string]core.Value, len(table.Columns))
		for c, name := range table.Columns {
			text := cellAt(rows[i], c)
			if text == "" {
				fields[name] = nil
				continue
			}
			fields[name] = s.textProcessor.SanitizeUTF8(text)
		}
		table.Records = append(table.Records, core.Record{Row: i + 1, Fields: fields})
	}

	s.logger.Debug("Loaded csv",
		zap.Int("columns", len(table.Columns)),
		zap.Int("rows", len(table.Records)))

	return table, nil
}
