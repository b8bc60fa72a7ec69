package factory

import (
	"github.com/mikey/lead-triage/internal/adapters/cache"
	"github.com/mikey/lead-triage/internal/config"
	"github.com/mikey/lead-triage/internal/core"
	"go.uber.org/zap"
)

// CacheFactory creates match caches based on configuration
type CacheFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewCacheFactory creates a new cache factory
func NewCacheFactory(cfg *config.Config, logger *zap.Logger) *CacheFactory {
	return &CacheFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateMatchCache creates the match cache, or nil when caching is disabled
func (f *CacheFactory) CreateMatchCache() core.MatchCache {
	cacheCfg := f.cfg.GetCache()
	if !cacheCfg.Enabled {
		f.logger.Debug("Match cache disabled")
		return nil
	}
	return cache.NewMemoryCache(f.logger, cacheCfg.MaxEntries)
}

// IsCacheEnabled returns whether caching is enabled
func (f *CacheFactory) IsCacheEnabled() bool {
	return f.cfg.GetCache().Enabled
}
