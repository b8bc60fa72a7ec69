package classifier

import (
	"fmt"

	"github.com/mikey/lead-triage/internal/blocklist"
	"github.com/mikey/lead-triage/internal/core"
	"go.uber.org/zap"
)

// Matching engines
const (
	EngineTrie = "trie"
	EngineScan = "scan"
)

// Builder compiles matchers for the configured engine
type Builder struct {
	engine string
	logger *zap.Logger
}

// NewBuilder creates a matcher builder for engine
func NewBuilder(engine string, logger *zap.Logger) (*Builder, error) {
	switch engine {
	case EngineTrie, EngineScan:
	default:
		return nil, fmt.Errorf("unsupported matching engine: %s", engine)
	}
	return &Builder{engine: engine, logger: logger}, nil
}

// Build compiles a matcher over sets and the fixed negative terms
func (b *Builder) Build(sets core.KeywordSets) (core.Matcher, error) {
	negative := blocklist.Terms()
	switch b.engine {
	case EngineTrie:
		return NewTrieMatcher(sets, negative, b.logger), nil
	case EngineScan:
		return NewScanMatcher(sets, negative), nil
	default:
		return nil, fmt.Errorf("unsupported matching engine: %s", b.engine)
	}
}
