// Package report derives the headline numbers, score histogram and
// follow-up recommendations shown after a processing run.
package report

import (
	"math"

	"github.com/mikey/lead-triage/internal/core"
)

// DefaultBins is the histogram resolution used when none is configured
const DefaultBins = 20

// Metrics are the headline counts of a run
type Metrics struct {
	Total         int
	DemoScheduled int
	Hot           int
	Cold          int
}

// MetricsFor counts the headline categories
func MetricsFor(t *core.ProcessedTable) Metrics {
	return Metrics{
		Total:         len(t.Leads),
		DemoScheduled: t.CountCategory(core.CategoryDemoScheduled),
		Hot:           t.CountCategory(core.CategoryHot),
		Cold:          t.CountCategory(core.CategoryCold),
	}
}

// Bin is one histogram bucket covering [Low, High). The last bin also
// includes High.
type Bin struct {
	Low   float64
	High  float64
	Count int
}

// Histogram splits scores into bins of equal width between the lowest and
// highest score. A single distinct score is centred in a range of width 1.
func Histogram(scores []int, bins int) []Bin {
	if len(scores) == 0 {
		return nil
	}
	if bins <= 0 {
		bins = DefaultBins
	}

	lo, hi := float64(scores[0]), float64(scores[0])
	for _, s := range scores[1:] {
		lo = math.Min(lo, float64(s))
		hi = math.Max(hi, float64(s))
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	width := (hi - lo) / float64(bins)
	out := make([]Bin, bins)
	for i := range out {
		out[i].Low = lo + float64(i)*width
		out[i].High = lo + float64(i+1)*width
	}
	out[bins-1].High = hi

	for _, s := range scores {
		i := int((float64(s) - lo) / width)
		if i >= bins {
			i = bins - 1
		}
		if i < 0 {
			i = 0
		}
		out[i].Count++
	}
	return out
}

// Scores extracts the priority scores of leads
func Scores(leads []core.Lead) []int {
	scores := make([]int, len(leads))
	for i, l := range leads {
		scores[i] = l.PriorityScore
	}
	return scores
}

// Recommendations are the follow-up actions suggested after a run
type Recommendations struct {
	Demos     int
	Hot       int
	Warm      int
	Immediate []string
	FollowUp  []string
	CallTimes []string
}

// RecommendationsFor builds the follow-up plan for a run
func RecommendationsFor(t *core.ProcessedTable) Recommendations {
	return Recommendations{
		Demos: t.CountCategory(core.CategoryDemoScheduled),
		Hot:   t.CountCategory(core.CategoryHot),
		Warm:  t.CountCategory(core.CategoryWarm),
		Immediate: []string{
			"Contact demo leads to confirm appointments",
			"Prepare demo materials specific to their industry",
			"Follow up hot leads within 24 hours",
			"Send hot leads the additional information they requested",
		},
		FollowUp: []string{
			"Schedule warm lead follow-ups for next week",
			"Send nurturing emails with case studies",
		},
		CallTimes: []string{
			"Afternoons (2-4 PM) have higher engagement",
			"Avoid calling during lunch hours (12-1 PM)",
		},
	}
}
