package core

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Default keyword configuration, one comma-separated list per bucket
const (
	DefaultDemoKeywords = "demo at,demo on,appt at,appointment at,wednesday demo,thursday demo,friday demo"
	DefaultHotKeywords  = "demo,appt,appointment,scheduled,set demo,next monday,follow up on"
	DefaultWarmKeywords = "call back,will get back,think about it,discuss with boss,check with,lemme know"
	DefaultColdKeywords = "no need,not interested,no interest,already got,hung up,cant be reached,no pick up,voicemail,wrong number"
)

// Bucket identifies one configurable keyword set
type Bucket int

const (
	BucketDemo Bucket = iota
	BucketHot
	BucketWarm
	BucketCold
)

// Buckets lists the keyword buckets in classification precedence order
var Buckets = []Bucket{BucketDemo, BucketHot, BucketWarm, BucketCold}

func (b Bucket) String() string {
	switch b {
	case BucketDemo:
		return "demo"
	case BucketHot:
		return "hot"
	case BucketWarm:
		return "warm"
	case BucketCold:
		return "cold"
	default:
		return "unknown"
	}
}

// Category returns the category assigned when this bucket matches first
func (b Bucket) Category() Category {
	switch b {
	case BucketDemo:
		return CategoryDemoScheduled
	case BucketHot:
		return CategoryHot
	case BucketWarm:
		return CategoryWarm
	case BucketCold:
		return CategoryCold
	default:
		return CategoryNeedsReview
	}
}

// KeywordSet is an ordered list of lower-cased phrases. It never contains
// an empty phrase.
type KeywordSet []string

// MatchesAny reports whether any phrase is a substring of text. text must
// already be lower-cased.
func (k KeywordSet) MatchesAny(text string) bool {
	for _, kw := range k {
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// KeywordSets holds the four bucket lists for one processing run
type KeywordSets struct {
	Demo KeywordSet
	Hot  KeywordSet
	Warm KeywordSet
	Cold KeywordSet
}

// Get returns the set of bucket b
func (k KeywordSets) Get(b Bucket) KeywordSet {
	switch b {
	case BucketDemo:
		return k.Demo
	case BucketHot:
		return k.Hot
	case BucketWarm:
		return k.Warm
	case BucketCold:
		return k.Cold
	default:
		return nil
	}
}

// ParseKeywordList splits comma-separated text into a keyword set. Pieces
// are trimmed and lower-cased; empty pieces are dropped so that a stray
// comma can never produce a phrase that matches everything.
func ParseKeywordList(text string) KeywordSet {
	return NormalizeKeywords(strings.Split(text, ","))
}

// NormalizeKeywords trims and lower-cases phrases, dropping empty ones.
// Order and duplicates are kept.
func NormalizeKeywords(phrases []string) KeywordSet {
	set := make(KeywordSet, 0, len(phrases))
	for _, p := range phrases {
		p = Normalize(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		set = append(set, p)
	}
	return set
}

// NewKeywordSets parses the four comma-separated bucket lists
func NewKeywordSets(demo, hot, warm, cold string) KeywordSets {
	return KeywordSets{
		Demo: ParseKeywordList(demo),
		Hot:  ParseKeywordList(hot),
		Warm: ParseKeywordList(warm),
		Cold: ParseKeywordList(cold),
	}
}

// DefaultKeywordSets returns the built-in keyword configuration
func DefaultKeywordSets() KeywordSets {
	return NewKeywordSets(DefaultDemoKeywords, DefaultHotKeywords, DefaultWarmKeywords, DefaultColdKeywords)
}

// Normalize lower-cases text using Unicode case mapping
func Normalize(text string) string {
	return cases.Lower(language.Und).String(text)
}
