package export

import (
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"
	"github.com/mikey/lead-triage/internal/core"
	"go.uber.org/zap"
)

type leadDocument struct {
	Row           int                   `json:"row"`
	Fields        map[string]core.Value `json:"fields"`
	Category      core.Category         `json:"category"`
	PriorityScore int                   `json:"priority_score"`
}

type summaryDocument struct {
	Category   core.Category `json:"category"`
	Count      int           `json:"count"`
	Percentage string        `json:"percentage"`
}

type tableDocument struct {
	RunID       string            `json:"run_id"`
	ProcessedAt time.Time         `json:"processed_at"`
	Columns     []string          `json:"columns"`
	Leads       []leadDocument    `json:"leads"`
	Summary     []summaryDocument `json:"summary,omitempty"`
}

// JSONExporter writes processed leads as JSON documents
type JSONExporter struct {
	threshold int
	logger    *zap.Logger
}

// NewJSONExporter creates a JSON exporter
func NewJSONExporter(threshold int, logger *zap.Logger) *JSONExporter {
	return &JSONExporter{
		threshold: threshold,
		logger:    logger,
	}
}

// ExportAll writes every lead plus the category summary
func (e *JSONExporter) ExportAll(w io.Writer, t *core.ProcessedTable) error {
	doc := newTableDocument(t, t.Leads)
	for _, line := range core.Summarize(t) {
		doc.Summary = append(doc.Summary, summaryDocument{
			Category:   line.Category,
			Count:      line.Count,
			Percentage: line.Percentage.StringFixed(2),
		})
	}

	if err := encode(w, doc); err != nil {
		return err
	}
	e.logger.Info("Exported categorized leads",
		zap.String("run_id", t.RunID),
		zap.Int("rows", len(doc.Leads)))
	return nil
}

// ExportHighPriority writes the leads scoring above the threshold
func (e *JSONExporter) ExportHighPriority(w io.Writer, t *core.ProcessedTable) error {
	doc := newTableDocument(t, highPriority(t, e.threshold))
	if err := encode(w, doc); err != nil {
		return err
	}
	e.logger.Info("Exported high priority leads",
		zap.String("run_id", t.RunID),
		zap.Int("threshold", e.threshold),
		zap.Int("rows", len(doc.Leads)))
	return nil
}

func newTableDocument(t *core.ProcessedTable, leads []core.Lead) tableDocument {
	doc := tableDocument{
		RunID:       t.RunID,
		ProcessedAt: t.ProcessedAt,
		Columns:     exportColumns(t),
		Leads:       make([]leadDocument, 0, len(leads)),
	}
	for _, l := range leads {
		doc.Leads = append(doc.Leads, leadDocument{
			Row:           l.Row,
			Fields:        l.Fields,
			Category:      l.Category,
			PriorityScore: l.PriorityScore,
		})
	}
	return doc
}

func encode(w io.Writer, doc tableDocument) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode leads: %w", err)
	}
	return nil
}
