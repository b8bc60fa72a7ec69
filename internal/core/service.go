package core

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TriageService classifies and scores lead tables
type TriageService struct {
	builder      MatcherBuilder
	cache        MatchCache
	logger       *zap.Logger
	cacheEnabled bool
}

// NewTriageService creates a new triage service. cache may be nil when
// cacheEnabled is false.
func NewTriageService(
	builder MatcherBuilder,
	cache MatchCache,
	logger *zap.Logger,
	cacheEnabled bool,
) *TriageService {
	return &TriageService{
		builder:      builder,
		cache:        cache,
		logger:       logger,
		cacheEnabled: cacheEnabled && cache != nil,
	}
}

// Process evaluates every record of table against sets and returns the
// leads sorted by priority score, highest first. Rows are never dropped.
func (s *TriageService) Process(table *Table, sets KeywordSets) (*ProcessedTable, error) {
	start := time.Now()
	runID := uuid.NewString()

	matcher, err := s.builder.Build(sets)
	if err != nil {
		return nil, fmt.Errorf("failed to build keyword matcher: %w", err)
	}

	if s.cacheEnabled {
		s.cache.Reset()
	}

	leads := make([]Lead, 0, len(table.Records))
	for _, rec := range table.Records {
		leads = append(leads, s.evaluate(matcher, rec))
	}

	if s.cacheEnabled {
		stats := s.cache.Stats()
		s.logger.Debug("Match cache stats",
			zap.String("run_id", runID),
			zap.Int("entries", stats.Entries),
			zap.Int("hits", stats.Hits),
			zap.Int("misses", stats.Misses))
	}

	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].PriorityScore > leads[j].PriorityScore
	})

	columns := make([]string, len(table.Columns))
	copy(columns, table.Columns)

	processed := &ProcessedTable{
		RunID:       runID,
		ProcessedAt: time.Now(),
		Columns:     columns,
		Leads:       leads,
	}

	if !table.HasColumn(ColumnRemarks) {
		s.logger.Warn("Input has no Remarks column, all leads are Unknown",
			zap.String("run_id", runID),
			zap.String("source", table.Source))
	}

	s.logger.Info("Processed leads",
		zap.String("run_id", runID),
		zap.String("source", table.Source),
		zap.Int("rows", len(leads)),
		zap.Int("demo_scheduled", processed.CountCategory(CategoryDemoScheduled)),
		zap.Int("hot", processed.CountCategory(CategoryHot)),
		zap.Int("warm", processed.CountCategory(CategoryWarm)),
		zap.Int("cold", processed.CountCategory(CategoryCold)),
		zap.Int("needs_review", processed.CountCategory(CategoryNeedsReview)),
		zap.Duration("duration", time.Since(start)))

	return processed, nil
}

// evaluate derives category and score for one record. Non-text remarks
// skip matching entirely and only the language rule can apply.
func (s *TriageService) evaluate(matcher Matcher, rec Record) Lead {
	remarks, ok := rec.Remarks()
	if !ok {
		return Lead{
			Record:        rec,
			Category:      CategoryUnknown,
			PriorityScore: ScoreFor(MatchResult{}, rec),
		}
	}

	result := s.match(matcher, Normalize(remarks))
	return Lead{
		Record:        rec,
		Category:      CategoryFor(result),
		PriorityScore: ScoreFor(result, rec),
	}
}

func (s *TriageService) match(matcher Matcher, lowered string) MatchResult {
	if s.cacheEnabled {
		if result, ok := s.cache.Get(lowered); ok {
			return result
		}
	}

	result := matcher.Match(lowered)

	if s.cacheEnabled {
		s.cache.Set(lowered, result)
	}
	return result
}
