package core

import (
	"sort"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Summarize counts leads per category. Lines are ordered by count, highest
// first; equal counts keep the order in which the category first appears
// in the processed table. Percentages are rounded half-to-even to two
// places.
func Summarize(t *ProcessedTable) []CategoryCount {
	if len(t.Leads) == 0 {
		return []CategoryCount{}
	}

	counts := make(map[Category]int)
	var order []Category
	for _, l := range t.Leads {
		if _, seen := counts[l.Category]; !seen {
			order = append(order, l.Category)
		}
		counts[l.Category]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	total := decimal.NewFromInt(int64(len(t.Leads)))
	summary := make([]CategoryCount, 0, len(order))
	for _, c := range order {
		n := counts[c]
		pct := decimal.NewFromInt(int64(n)).Mul(hundred).Div(total).RoundBank(2)
		summary = append(summary, CategoryCount{
			Category:   c,
			Count:      n,
			Percentage: pct,
		})
	}
	return summary
}
