package factory

import (
	"github.com/mikey/lead-triage/internal/classifier"
	"github.com/mikey/lead-triage/internal/config"
	"github.com/mikey/lead-triage/internal/core"
	"go.uber.org/zap"
)

// MatcherFactory creates keyword matcher builders based on configuration
type MatcherFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewMatcherFactory creates a new matcher factory
func NewMatcherFactory(cfg *config.Config, logger *zap.Logger) *MatcherFactory {
	return &MatcherFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateMatcherBuilder creates the builder for the configured engine
func (f *MatcherFactory) CreateMatcherBuilder() (core.MatcherBuilder, error) {
	engine := f.cfg.GetMatching().Engine
	f.logger.Debug("Using matching engine", zap.String("engine", engine))
	return classifier.NewBuilder(engine, f.logger)
}
