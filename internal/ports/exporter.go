package ports

import (
	"io"

	"github.com/mikey/lead-triage/internal/core"
)

// Exporter serializes processed tables
type Exporter interface {
	// ExportAll writes every lead plus the category summary
	ExportAll(w io.Writer, t *core.ProcessedTable) error

	// ExportHighPriority writes only the leads above the priority threshold
	ExportHighPriority(w io.Writer, t *core.ProcessedTable) error
}
