package factory

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mikey/lead-triage/internal/adapters/source"
	"github.com/mikey/lead-triage/internal/config"
	"github.com/mikey/lead-triage/internal/core"
	"github.com/mikey/lead-triage/internal/ports"
	"github.com/mikey/lead-triage/internal/utils"
	"go.uber.org/zap"
)

// SourceFactory creates lead sources based on the input file type
type SourceFactory struct {
	cfg           *config.Config
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewSourceFactory creates a new source factory
func NewSourceFactory(cfg *config.Config, logger *zap.Logger, textProcessor *utils.TextProcessor) *SourceFactory {
	return &SourceFactory{
		cfg:           cfg,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// CreateLeadSource creates a source able to read path
func (f *SourceFactory) CreateLeadSource(path string) (ports.LeadSource, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".xlsx", ".xlsm":
		return source.NewExcelSource(f.cfg.GetInput().Sheet, f.logger, f.textProcessor), nil
	case ".csv":
		return source.NewCSVSource(f.logger, f.textProcessor), nil
	case ".xls":
		return nil, fmt.Errorf("%w: legacy .xls workbooks must be saved as .xlsx", core.ErrUnsupportedFormat)
	default:
		return nil, fmt.Errorf("%w: %q", core.ErrUnsupportedFormat, ext)
	}
}
