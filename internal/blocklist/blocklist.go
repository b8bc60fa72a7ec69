package blocklist

import (
	"strings"

	"go.uber.org/zap"
)

// defaultTerms are the profane or hostile fragments that mark a negative
// response. The list is fixed and not user configurable.
var defaultTerms = []string{"fuck", "bitch", "cunt", "dumb", "prick"}

// Terms returns a copy of the fixed negative-term list
func Terms() []string {
	terms := make([]string, len(defaultTerms))
	copy(terms, defaultTerms)
	return terms
}

// Checker reports whether remarks contain a negative term
type Checker struct {
	terms  []string
	logger *zap.Logger
}

// NewChecker creates a checker over terms
func NewChecker(terms []string, logger *zap.Logger) *Checker {
	normalized := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		normalized = append(normalized, term)
	}

	if logger != nil {
		logger.Debug("Initialized negative term checker", zap.Int("terms", len(normalized)))
	}

	return &Checker{
		terms:  normalized,
		logger: logger,
	}
}

// Default returns a checker over the fixed negative-term list
func Default() *Checker {
	return NewChecker(defaultTerms, nil)
}

// IsNegative checks lower-cased remarks for any negative term
func (c *Checker) IsNegative(remarks string) bool {
	for _, term := range c.terms {
		if strings.Contains(remarks, term) {
			if c.logger != nil {
				c.logger.Debug("Negative term matched", zap.String("term", term))
			}
			return true
		}
	}
	return false
}
