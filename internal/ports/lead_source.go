package ports

import (
	"io"

	"github.com/mikey/lead-triage/internal/core"
)

// LeadSource reads a lead table from a file
type LeadSource interface {
	// Load parses r into a table. The first row is the header.
	Load(r io.Reader) (*core.Table, error)
}
