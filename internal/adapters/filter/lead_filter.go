package filter

import (
	"sort"

	"github.com/mikey/lead-triage/internal/core"
)

// Criteria selects leads from a processed table. Zero values select
// everything.
type Criteria struct {
	Category core.Category
	MinScore *int
	Language string
}

// Apply returns the leads matching every criterion in processed order. The
// language criterion only applies when the table has a Language column.
func Apply(t *core.ProcessedTable, c Criteria) []core.Lead {
	useLanguage := c.Language != "" && t.HasColumn(core.ColumnLanguage)

	selected := make([]core.Lead, 0, len(t.Leads))
	for _, l := range t.Leads {
		if c.Category != "" && l.Category != c.Category {
			continue
		}
		if c.MinScore != nil && l.PriorityScore < *c.MinScore {
			continue
		}
		if useLanguage {
			if lang, ok := l.Language(); !ok || lang != c.Language {
				continue
			}
		}
		selected = append(selected, l)
	}
	return selected
}

// Options lists the values a user can choose from for each criterion
type Options struct {
	Categories  []core.Category
	MinScore    int
	MaxScore    int
	Languages   []string
	HasLanguage bool
}

// OptionsFor collects the selectable filter values of a processed table
func OptionsFor(t *core.ProcessedTable) Options {
	opts := Options{HasLanguage: t.HasColumn(core.ColumnLanguage)}

	categories := make(map[core.Category]bool)
	languages := make(map[string]bool)
	for i, l := range t.Leads {
		categories[l.Category] = true
		if lang, ok := l.Language(); ok {
			languages[lang] = true
		}
		if i == 0 || l.PriorityScore < opts.MinScore {
			opts.MinScore = l.PriorityScore
		}
		if i == 0 || l.PriorityScore > opts.MaxScore {
			opts.MaxScore = l.PriorityScore
		}
	}

	for c := range categories {
		opts.Categories = append(opts.Categories, c)
	}
	sort.Slice(opts.Categories, func(i, j int) bool {
		return opts.Categories[i] < opts.Categories[j]
	})

	if opts.HasLanguage {
		for lang := range languages {
			opts.Languages = append(opts.Languages, lang)
		}
		sort.Strings(opts.Languages)
	}
	return opts
}
