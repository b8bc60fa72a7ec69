package cache

import (
	"sync"

	"github.com/mikey/lead-triage/internal/core"
	"go.uber.org/zap"
)

// MemoryCache is an in-memory implementation of the MatchCache interface.
// Once maxEntries results are stored new remarks are no longer admitted.
type MemoryCache struct {
	entries    map[string]core.MatchResult
	mu         sync.RWMutex
	logger     *zap.Logger
	maxEntries int
	hits       int
	misses     int
}

// NewMemoryCache creates a new in-memory cache. maxEntries <= 0 means
// unbounded.
func NewMemoryCache(logger *zap.Logger, maxEntries int) *MemoryCache {
	return &MemoryCache{
		entries:    make(map[string]core.MatchResult),
		logger:     logger,
		maxEntries: maxEntries,
	}
}

// Get retrieves the cached result for lower-cased remarks
func (c *MemoryCache) Get(remarks string) (core.MatchResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	result, ok := c.entries[remarks]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return result, ok
}

// Set stores a result
func (c *MemoryCache) Set(remarks string, result core.MatchResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[remarks]; !ok && c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		return
	}
	c.entries[remarks] = result
}

// Reset drops every entry and the hit counters
func (c *MemoryCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.logger != nil && (c.hits > 0 || c.misses > 0) {
		c.logger.Debug("Resetting match cache",
			zap.Int("entries", len(c.entries)),
			zap.Int("hits", c.hits),
			zap.Int("misses", c.misses))
	}

	c.entries = make(map[string]core.MatchResult)
	c.hits = 0
	c.misses = 0
}

// Stats returns the current counters
func (c *MemoryCache) Stats() core.CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return core.CacheStats{
		Entries: len(c.entries),
		Hits:    c.hits,
		Misses:  c.misses,
	}
}
