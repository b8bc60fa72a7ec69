package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Well-known input columns. Lookups are exact and case sensitive.
const (
	ColumnName       = "Name"
	ColumnEmail      = "Email address"
	ColumnPhone      = "Phone number"
	ColumnCompany    = "Company Name"
	ColumnRemarks    = "Remarks"
	ColumnLanguage   = "Language"
	ColumnAssignedOn = "Assigned on"
)

// Columns appended by processing
const (
	ColumnCategory      = "Category"
	ColumnPriorityScore = "Priority_Score"
)

// Value is a single cell: nil, string, float64 or bool
type Value any

// Record is one spreadsheet row keyed by header name
type Record struct {
	Row    int
	Fields map[string]Value
}

// Get returns the raw value of a column and whether the column is present
// on the record
func (r Record) Get(column string) (Value, bool) {
	v, ok := r.Fields[column]
	return v, ok
}

// Text returns the value of a column only when it holds text
func (r Record) Text(column string) (string, bool) {
	v, ok := r.Fields[column]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Remarks returns the remarks text
func (r Record) Remarks() (string, bool) { return r.Text(ColumnRemarks) }

// Language returns the language code
func (r Record) Language() (string, bool) { return r.Text(ColumnLanguage) }

// Name returns the lead name
func (r Record) Name() (string, bool) { return r.Text(ColumnName) }

// Email returns the email address
func (r Record) Email() (string, bool) { return r.Text(ColumnEmail) }

// Phone returns the phone number. Phone numbers are frequently stored as
// numeric cells so the raw value is returned.
func (r Record) Phone() (Value, bool) {
	v, ok := r.Get(ColumnPhone)
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Company returns the company name
func (r Record) Company() (string, bool) { return r.Text(ColumnCompany) }

// AssignedOn returns the assignment date as displayed in the source
func (r Record) AssignedOn() (Value, bool) {
	v, ok := r.Get(ColumnAssignedOn)
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Table is a loaded lead sheet
type Table struct {
	Source  string
	Columns []string
	Records []Record
}

// HasColumn reports whether the header contains column
func (t *Table) HasColumn(column string) bool {
	return hasColumn(t.Columns, column)
}

func hasColumn(columns []string, column string) bool {
	for _, c := range columns {
		if c == column {
			return true
		}
	}
	return false
}

// Category is the bucket a lead is assigned to
type Category string

const (
	CategoryDemoScheduled Category = "Demo Scheduled"
	CategoryHot           Category = "Hot Lead"
	CategoryWarm          Category = "Warm Lead"
	CategoryCold          Category = "Cold/Dead Lead"
	CategoryNegative      Category = "Negative Response"
	CategoryNeedsReview   Category = "Needs Review"
	CategoryUnknown       Category = "Unknown"
)

var categoryColors = map[Category]string{
	CategoryDemoScheduled: "#10B981",
	CategoryHot:           "#EF4444",
	CategoryWarm:          "#F59E0B",
	CategoryCold:          "#6B7280",
	CategoryNegative:      "#8B5CF6",
	CategoryNeedsReview:   "#3B82F6",
}

// Color returns the display colour of the category
func (c Category) Color() string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return "#999999"
}

// Lead is a record together with its derived category and score
type Lead struct {
	Record
	Category      Category
	PriorityScore int
}

// ProcessedTable is the result of one processing run, sorted by priority
// score descending
type ProcessedTable struct {
	RunID       string
	ProcessedAt time.Time
	Columns     []string
	Leads       []Lead
}

// HasColumn reports whether the input header contained column
func (t *ProcessedTable) HasColumn(column string) bool {
	return hasColumn(t.Columns, column)
}

// CountCategory returns how many leads were assigned category c
func (t *ProcessedTable) CountCategory(c Category) int {
	n := 0
	for _, l := range t.Leads {
		if l.Category == c {
			n++
		}
	}
	return n
}

// CategoryCount is one line of the category summary
type CategoryCount struct {
	Category   Category
	Count      int
	Percentage decimal.Decimal
}
