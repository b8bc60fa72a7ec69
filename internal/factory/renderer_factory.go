package factory

import (
	"github.com/mikey/lead-triage/internal/adapters/filter"
	"github.com/mikey/lead-triage/internal/config"
	"github.com/mikey/lead-triage/internal/ports"
	"github.com/mikey/lead-triage/internal/utils"
	"go.uber.org/zap"
)

// RendererFactory creates report renderers based on configuration
type RendererFactory struct {
	cfg           *config.Config
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewRendererFactory creates a new renderer factory
func NewRendererFactory(cfg *config.Config, logger *zap.Logger, textProcessor *utils.TextProcessor) *RendererFactory {
	return &RendererFactory{
		cfg:           cfg,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// CreateRenderer creates the terminal renderer
func (f *RendererFactory) CreateRenderer() ports.Renderer {
	display := f.cfg.GetDisplay()
	return filter.NewCliRenderer(f.logger, f.textProcessor, display.PreviewLength, display.HistogramBins)
}
