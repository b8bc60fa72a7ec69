package core

// Matcher scans lower-cased remarks once and reports every signal found
type Matcher interface {
	Match(remarks string) MatchResult
}

// MatcherBuilder compiles a matcher for one run's keyword sets
type MatcherBuilder interface {
	Build(sets KeywordSets) (Matcher, error)
}

// MatchCache memoises match results within a single run
type MatchCache interface {
	// Get returns the cached result for lower-cased remarks
	Get(remarks string) (MatchResult, bool)

	// Set stores a result
	Set(remarks string, result MatchResult)

	// Reset drops all entries; called when keyword sets change
	Reset()

	// Stats reports the counters since the last Reset
	Stats() CacheStats
}

// CacheStats reports cache effectiveness for the current run
type CacheStats struct {
	Entries int
	Hits    int
	Misses  int
}
