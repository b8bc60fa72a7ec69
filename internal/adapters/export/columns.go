package export

import "github.com/mikey/lead-triage/internal/core"

// Sheet names of the exported workbooks
const (
	SheetLeads        = "Categorized_Leads"
	SheetSummary      = "Summary"
	SheetHighPriority = "High_Priority_Leads"
)

// exportColumns lists the input columns followed by Category and
// Priority_Score. Input columns that already carry those names are reused
// in place.
func exportColumns(t *core.ProcessedTable) []string {
	columns := make([]string, 0, len(t.Columns)+2)
	columns = append(columns, t.Columns...)
	for _, extra := range []string{core.ColumnCategory, core.ColumnPriorityScore} {
		if !t.HasColumn(extra) {
			columns = append(columns, extra)
		}
	}
	return columns
}

func rowValues(l core.Lead, columns []string) []any {
	values := make([]any, len(columns))
	for i, c := range columns {
		switch c {
		case core.ColumnCategory:
			values[i] = string(l.Category)
		case core.ColumnPriorityScore:
			values[i] = l.PriorityScore
		default:
			v, _ := l.Get(c)
			values[i] = v
		}
	}
	return values
}

// highPriority returns leads scoring strictly above threshold
func highPriority(t *core.ProcessedTable, threshold int) []core.Lead {
	leads := make([]core.Lead, 0, len(t.Leads))
	for _, l := range t.Leads {
		if l.PriorityScore > threshold {
			leads = append(leads, l)
		}
	}
	return leads
}
