package core

import (
	"strings"

	"github.com/mikey/lead-triage/internal/blocklist"
)

// Score weights
const (
	WeightDemo          = 100
	WeightHot           = 80
	WeightWarm          = 50
	WeightCold          = -100
	WeightSmallCompany  = -30
	WeightSelfEmployed  = -20
	WeightLanguageBonus = 10
)

// BonusLanguage is the language code that earns WeightLanguageBonus
const BonusLanguage = "CHI"

// Fixed company-size phrases affecting the score
var (
	SmallCompanyPhrases = []string{"small", "less than"}
	SelfEmployedPhrases = []string{"freelance", "self employed"}
)

var negativeTerms = blocklist.Default()

// Categorize assigns exactly one category to remarks. Keyword sets are
// tried in precedence order Demo, Hot, Warm, Cold and the first match wins.
func Categorize(remarks Value, sets KeywordSets) Category {
	text, ok := remarks.(string)
	if !ok {
		return CategoryUnknown
	}
	lowered := Normalize(text)

	for _, b := range Buckets {
		if sets.Get(b).MatchesAny(lowered) {
			return b.Category()
		}
	}

	if negativeTerms.IsNegative(lowered) {
		return CategoryNegative
	}

	return CategoryNeedsReview
}

// Score computes the priority score of a record. Every rule is evaluated
// independently and all matching weights accumulate.
func Score(rec Record, sets KeywordSets) int {
	remarks, _ := rec.Remarks()
	lowered := Normalize(remarks)

	score := 0
	if sets.Demo.MatchesAny(lowered) {
		score += WeightDemo
	}
	if sets.Hot.MatchesAny(lowered) {
		score += WeightHot
	}
	if sets.Warm.MatchesAny(lowered) {
		score += WeightWarm
	}
	if sets.Cold.MatchesAny(lowered) {
		score += WeightCold
	}
	if containsAny(lowered, SmallCompanyPhrases) {
		score += WeightSmallCompany
	}
	if containsAny(lowered, SelfEmployedPhrases) {
		score += WeightSelfEmployed
	}
	if hasBonusLanguage(rec) {
		score += WeightLanguageBonus
	}

	return score
}

// MatchResult records which signals a single remarks text triggered
type MatchResult struct {
	Buckets      [4]bool
	Negative     bool
	SmallCompany bool
	SelfEmployed bool
}

// Hit reports whether bucket b matched
func (m MatchResult) Hit(b Bucket) bool {
	if b < BucketDemo || b > BucketCold {
		return false
	}
	return m.Buckets[b]
}

// CategoryFor derives the category from a match result using the same
// precedence as Categorize
func CategoryFor(m MatchResult) Category {
	for _, b := range Buckets {
		if m.Hit(b) {
			return b.Category()
		}
	}
	if m.Negative {
		return CategoryNegative
	}
	return CategoryNeedsReview
}

// ScoreFor derives the score from a match result plus the language rule
func ScoreFor(m MatchResult, rec Record) int {
	score := 0
	if m.Hit(BucketDemo) {
		score += WeightDemo
	}
	if m.Hit(BucketHot) {
		score += WeightHot
	}
	if m.Hit(BucketWarm) {
		score += WeightWarm
	}
	if m.Hit(BucketCold) {
		score += WeightCold
	}
	if m.SmallCompany {
		score += WeightSmallCompany
	}
	if m.SelfEmployed {
		score += WeightSelfEmployed
	}
	if hasBonusLanguage(rec) {
		score += WeightLanguageBonus
	}
	return score
}

func hasBonusLanguage(rec Record) bool {
	lang, ok := rec.Language()
	return ok && lang == BonusLanguage
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
