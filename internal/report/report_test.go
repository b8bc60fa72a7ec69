package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikey/lead-triage/internal/core"
)

func TestHistogram(t *testing.T) {
	bins := Histogram([]int{0, 10, 20, 30, 40}, 4)
	require.Len(t, bins, 4)

	assert.Equal(t, 0.0, bins[0].Low)
	assert.Equal(t, 10.0, bins[0].High)
	assert.Equal(t, 40.0, bins[3].High)
	assert.Equal(t, []int{1, 1, 1, 2}, []int{bins[0].Count, bins[1].Count, bins[2].Count, bins[3].Count})
}

func TestHistogram_SingleValue(t *testing.T) {
	bins := Histogram([]int{80, 80, 80}, 2)
	require.Len(t, bins, 2)
	assert.Equal(t, 79.5, bins[0].Low)
	assert.Equal(t, 80.5, bins[1].High)
	assert.Equal(t, 0, bins[0].Count)
	assert.Equal(t, 3, bins[1].Count)
}

func TestHistogram_Conserves(t *testing.T) {
	scores := []int{180, 60, 50, 10, 0, 0, -90, -100, -130}
	total := 0
	for _, b := range Histogram(scores, 0) {
		total += b.Count
	}
	assert.Equal(t, len(scores), total)
	assert.Len(t, Histogram(scores, 0), DefaultBins)
	assert.Nil(t, Histogram(nil, 5))
}

func TestMetricsAndRecommendations(t *testing.T) {
	table := &core.ProcessedTable{Leads: []core.Lead{
		{Category: core.CategoryDemoScheduled, PriorityScore: 180},
		{Category: core.CategoryHot, PriorityScore: 80},
		{Category: core.CategoryHot, PriorityScore: -20},
		{Category: core.CategoryWarm, PriorityScore: 50},
		{Category: core.CategoryCold, PriorityScore: -100},
	}}

	assert.Equal(t, Metrics{Total: 5, DemoScheduled: 1, Hot: 2, Cold: 1}, MetricsFor(table))

	rec := RecommendationsFor(table)
	assert.Equal(t, 1, rec.Demos)
	assert.Equal(t, 2, rec.Hot)
	assert.Equal(t, 1, rec.Warm)
	assert.NotEmpty(t, rec.Immediate)

	assert.Equal(t, []int{180, 80, -20, 50, -100}, Scores(table.Leads))
}
