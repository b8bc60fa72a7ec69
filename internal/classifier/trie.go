// Package classifier provides the keyword matchers used by the triage
// service. trie.go implements an Aho-Corasick matcher that finds every
// bucket phrase, negative term and company-size phrase in one pass.
package classifier

import (
	"sync"

	ahocorasick "github.com/cloudflare/ahocorasick"
	"github.com/mikey/lead-triage/internal/core"
	"go.uber.org/zap"
)

type signal int

const (
	signalBucket signal = iota
	signalNegative
	signalSmallCompany
	signalSelfEmployed
)

type target struct {
	signal signal
	bucket core.Bucket
}

// TrieMatcher matches remarks against a compiled Aho-Corasick automaton
type TrieMatcher struct {
	mu       sync.Mutex
	matcher  *ahocorasick.Matcher
	phrases  []string
	targets  [][]target // phrase index -> signals it triggers
	negative []string
}

// NewTrieMatcher compiles sets plus the fixed phrases into one automaton.
// Identical phrases from different sets share a dictionary entry.
func NewTrieMatcher(sets core.KeywordSets, negative []string, logger *zap.Logger) *TrieMatcher {
	m := &TrieMatcher{negative: negative}
	index := make(map[string]int)

	add := func(phrase string, t target) {
		if phrase == "" {
			return
		}
		i, ok := index[phrase]
		if !ok {
			i = len(m.phrases)
			index[phrase] = i
			m.phrases = append(m.phrases, phrase)
			m.targets = append(m.targets, nil)
		}
		m.targets[i] = append(m.targets[i], t)
	}

	for _, b := range core.Buckets {
		for _, kw := range sets.Get(b) {
			add(kw, target{signal: signalBucket, bucket: b})
		}
	}
	for _, term := range negative {
		add(term, target{signal: signalNegative})
	}
	for _, p := range core.SmallCompanyPhrases {
		add(p, target{signal: signalSmallCompany})
	}
	for _, p := range core.SelfEmployedPhrases {
		add(p, target{signal: signalSelfEmployed})
	}

	if len(m.phrases) > 0 {
		m.matcher = ahocorasick.NewStringMatcher(m.phrases)
	}

	if logger != nil {
		logger.Debug("Compiled trie matcher",
			zap.Int("phrases", len(m.phrases)),
			zap.Int("demo", len(sets.Demo)),
			zap.Int("hot", len(sets.Hot)),
			zap.Int("warm", len(sets.Warm)),
			zap.Int("cold", len(sets.Cold)))
	}

	return m
}

// Match scans lower-cased remarks once
func (m *TrieMatcher) Match(remarks string) core.MatchResult {
	var result core.MatchResult
	if m.matcher == nil || remarks == "" {
		return result
	}

	// The automaton keeps per-call state
	m.mu.Lock()
	hits := m.matcher.Match([]byte(remarks))
	m.mu.Unlock()

	for _, i := range hits {
		if i < 0 || i >= len(m.targets) {
			continue
		}
		for _, t := range m.targets[i] {
			switch t.signal {
			case signalBucket:
				result.Buckets[t.bucket] = true
			case signalNegative:
				result.Negative = true
			case signalSmallCompany:
				result.SmallCompany = true
			case signalSelfEmployed:
				result.SelfEmployed = true
			}
		}
	}
	return result
}
