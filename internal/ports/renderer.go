package ports

import (
	"io"

	"github.com/mikey/lead-triage/internal/core"
)

// Renderer presents a processed table to the user
type Renderer interface {
	// Render writes the report for the leads selected by the view
	Render(w io.Writer, t *core.ProcessedTable, selected []core.Lead) error
}
