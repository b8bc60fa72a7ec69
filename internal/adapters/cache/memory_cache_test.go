package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/mikey/lead-triage/internal/core"
)

func TestMemoryCache_GetSet(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), 0)

	_, ok := c.Get("call back")
	assert.False(t, ok)

	want := core.MatchResult{Buckets: [4]bool{false, false, true, false}}
	c.Set("call back", want)

	got, ok := c.Get("call back")
	assert.True(t, ok)
	assert.Equal(t, want, got)
	assert.Equal(t, core.CacheStats{Entries: 1, Hits: 1, Misses: 1}, c.Stats())
}

func TestMemoryCache_Bound(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), 2)
	c.Set("a", core.MatchResult{})
	c.Set("b", core.MatchResult{})
	c.Set("c", core.MatchResult{})

	_, ok := c.Get("c")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Stats().Entries)

	// existing entries can still be replaced
	c.Set("a", core.MatchResult{Negative: true})
	got, _ := c.Get("a")
	assert.True(t, got.Negative)
}

func TestMemoryCache_Reset(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), 10)
	c.Set("a", core.MatchResult{})
	c.Get("a")
	c.Reset()

	assert.Equal(t, core.CacheStats{}, c.Stats())
	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestMemoryCache_Concurrent(t *testing.T) {
	c := NewMemoryCache(nil, 0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Set("x", core.MatchResult{})
				c.Get("x")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 800, c.Stats().Hits+c.Stats().Misses)
}
