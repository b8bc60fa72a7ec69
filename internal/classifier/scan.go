package classifier

import (
	"strings"

	"github.com/mikey/lead-triage/internal/core"
)

// ScanMatcher tests each phrase with a substring search
type ScanMatcher struct {
	sets     core.KeywordSets
	negative []string
}

// NewScanMatcher creates a scan matcher
func NewScanMatcher(sets core.KeywordSets, negative []string) *ScanMatcher {
	return &ScanMatcher{sets: sets, negative: negative}
}

// Match tests lower-cased remarks against every phrase list
func (m *ScanMatcher) Match(remarks string) core.MatchResult {
	var result core.MatchResult
	for _, b := range core.Buckets {
		result.Buckets[b] = m.sets.Get(b).MatchesAny(remarks)
	}
	result.Negative = containsAny(remarks, m.negative)
	result.SmallCompany = containsAny(remarks, core.SmallCompanyPhrases)
	result.SelfEmployed = containsAny(remarks, core.SelfEmployedPhrases)
	return result
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if p != "" && strings.Contains(text, p) {
			return true
		}
	}
	return false
}
