package factory

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mikey/lead-triage/internal/adapters/export"
	"github.com/mikey/lead-triage/internal/config"
	"github.com/mikey/lead-triage/internal/core"
	"github.com/mikey/lead-triage/internal/ports"
	"go.uber.org/zap"
)

// ExportFactory creates exporters based on the output file type
type ExportFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewExportFactory creates a new export factory
func NewExportFactory(cfg *config.Config, logger *zap.Logger) *ExportFactory {
	return &ExportFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateExporter creates an exporter able to write path
func (f *ExportFactory) CreateExporter(path string) (ports.Exporter, error) {
	threshold := f.cfg.GetExport().HighPriorityThreshold

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		return export.NewExcelExporter(threshold, f.logger), nil
	case ".json":
		return export.NewJSONExporter(threshold, f.logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", core.ErrUnsupportedFormat, ext)
	}
}
