package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/lead-triage/internal/config"
	"github.com/mikey/lead-triage/internal/core"
	"github.com/mikey/lead-triage/internal/factory"
	"github.com/mikey/lead-triage/internal/logging"
	"github.com/mikey/lead-triage/internal/ports"
	"github.com/mikey/lead-triage/internal/utils"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer(opts *Options) (*dig.Container, error) {
	container := dig.New()

	// Register options
	if err := container.Provide(func() *Options { return opts }); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(opts *Options) (*config.Config, error) {
		cfg, err := config.New(opts.ConfigFile)
		if err != nil {
			return nil, err
		}
		for key, value := range opts.Overrides {
			cfg.Set(key, value)
		}
		return cfg, nil
	}); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(opts *Options, cfg *config.Config) (*zap.Logger, error) {
		if opts.Verbose || opts.JSONLog {
			return logging.InitConsoleLogger(opts.Verbose, opts.JSONLog)
		}
		return logging.InitLogger(cfg)
	}); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(utils.NewTextProcessor); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewCacheFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewMatcherFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewSourceFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewExportFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewRendererFactory); err != nil {
		return nil, err
	}

	// Register matcher builder
	if err := container.Provide(func(f *factory.MatcherFactory) (core.MatcherBuilder, error) {
		return f.CreateMatcherBuilder()
	}); err != nil {
		return nil, err
	}

	// Register match cache and enabled flag
	if err := container.Provide(func(f *factory.CacheFactory) core.MatchCache {
		return f.CreateMatchCache()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.CacheFactory) bool {
		return f.IsCacheEnabled()
	}); err != nil {
		return nil, err
	}

	// Register triage service
	if err := container.Provide(core.NewTriageService); err != nil {
		return nil, err
	}

	// Register renderer
	if err := container.Provide(func(f *factory.RendererFactory) ports.Renderer {
		return f.CreateRenderer()
	}); err != nil {
		return nil, err
	}

	return container, nil
}
