package filter

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mikey/lead-triage/internal/core"
	"github.com/mikey/lead-triage/internal/report"
	"github.com/mikey/lead-triage/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const maxBarWidth = 40

// CliRenderer prints a processed table as a terminal report
type CliRenderer struct {
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
	previewLength int
	bins          int
	printer       *message.Printer
}

// NewCliRenderer creates a new CLI renderer
func NewCliRenderer(logger *zap.Logger, textProcessor *utils.TextProcessor, previewLength, bins int) *CliRenderer {
	return &CliRenderer{
		logger:        logger,
		textProcessor: textProcessor,
		previewLength: previewLength,
		bins:          bins,
		printer:       message.NewPrinter(language.English),
	}
}

// Render writes metrics, distributions, the selected leads and the
// recommendations
func (r *CliRenderer) Render(w io.Writer, t *core.ProcessedTable, selected []core.Lead) error {
	r.logger.Debug("Rendering report",
		zap.String("run_id", t.RunID),
		zap.Int("rows", len(t.Leads)),
		zap.Int("selected", len(selected)))

	r.renderMetrics(w, report.MetricsFor(t))
	r.renderDistribution(w, core.Summarize(t))
	r.renderHistogram(w, report.Histogram(report.Scores(t.Leads), r.bins))
	r.renderLeads(w, t, selected)
	r.renderRecommendations(w, report.RecommendationsFor(t))
	return nil
}

func (r *CliRenderer) newTable(w io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	return tw
}

func (r *CliRenderer) renderMetrics(w io.Writer, m report.Metrics) {
	fmt.Fprintf(w, "\n=== AI Categorized Leads ===\n")
	tw := r.newTable(w)
	tw.AppendHeader(table.Row{"Total Leads", "Demo Scheduled", "Hot Leads", "Cold Leads"})
	tw.AppendRow(table.Row{
		r.printer.Sprintf("%d", m.Total),
		r.printer.Sprintf("%d", m.DemoScheduled),
		r.printer.Sprintf("%d", m.Hot),
		r.printer.Sprintf("%d", m.Cold),
	})
	tw.Render()
}

func (r *CliRenderer) renderDistribution(w io.Writer, summary []core.CategoryCount) {
	fmt.Fprintf(w, "\n=== Lead Distribution by Category ===\n")
	if len(summary) == 0 {
		fmt.Fprintf(w, "No leads\n")
		return
	}

	top := summary[0].Count
	tw := r.newTable(w)
	tw.AppendHeader(table.Row{"Category", "Count", "Percentage", ""})
	for _, line := range summary {
		tw.AppendRow(table.Row{
			string(line.Category),
			r.printer.Sprintf("%d", line.Count),
			line.Percentage.StringFixed(2) + "%",
			bar(line.Count, top),
		})
	}
	tw.Render()
}

func (r *CliRenderer) renderHistogram(w io.Writer, bins []report.Bin) {
	fmt.Fprintf(w, "\n=== Priority Score Distribution ===\n")
	if len(bins) == 0 {
		fmt.Fprintf(w, "No scores\n")
		return
	}

	top := 0
	for _, b := range bins {
		if b.Count > top {
			top = b.Count
		}
	}

	tw := r.newTable(w)
	tw.AppendHeader(table.Row{"Priority Score", "Number of Leads", ""})
	for _, b := range bins {
		tw.AppendRow(table.Row{
			fmt.Sprintf("%.1f to %.1f", b.Low, b.High),
			r.printer.Sprintf("%d", b.Count),
			bar(b.Count, top),
		})
	}
	tw.Render()
}

func (r *CliRenderer) renderLeads(w io.Writer, t *core.ProcessedTable, selected []core.Lead) {
	fmt.Fprintf(w, "\n=== Filtered Leads View ===\n")
	r.printer.Fprintf(w, "Showing %d leads\n", len(selected))
	if len(selected) == 0 {
		return
	}

	showCompany := t.HasColumn(core.ColumnCompany)
	showEmail := t.HasColumn(core.ColumnEmail)
	showPhone := t.HasColumn(core.ColumnPhone)
	showAssigned := t.HasColumn(core.ColumnAssignedOn)

	header := table.Row{"Name"}
	if showCompany {
		header = append(header, "Company")
	}
	header = append(header, "Remarks")
	if showEmail {
		header = append(header, "Email")
	}
	if showPhone {
		header = append(header, "Phone")
	}
	if showAssigned {
		header = append(header, "Assigned On")
	}
	header = append(header, "Priority", "Category")

	tw := r.newTable(w)
	tw.AppendHeader(header)
	for _, l := range selected {
		name, ok := l.Name()
		if !ok {
			name = "N/A"
		}
		row := table.Row{name}
		if showCompany {
			company, _ := l.Company()
			row = append(row, company)
		}
		row = append(row, r.textProcessor.Preview(r.remarksText(l), r.previewLength))
		if showEmail {
			email, _ := l.Email()
			row = append(row, email)
		}
		if showPhone {
			phone, _ := l.Phone()
			row = append(row, utils.FormatValue(phone))
		}
		if showAssigned {
			assigned, _ := l.AssignedOn()
			row = append(row, utils.FormatValue(assigned))
		}
		row = append(row, l.PriorityScore, string(l.Category))
		tw.AppendRow(row)
	}
	tw.Render()
}

func (r *CliRenderer) remarksText(l core.Lead) string {
	v, ok := l.Get(core.ColumnRemarks)
	if !ok {
		return "No remarks"
	}
	return utils.FormatValue(v)
}

func (r *CliRenderer) renderRecommendations(w io.Writer, rec report.Recommendations) {
	fmt.Fprintf(w, "\n=== AI Recommendations ===\n")
	fmt.Fprintf(w, "Immediate Actions:\n")
	r.printer.Fprintf(w, "  %d Demos Scheduled\n", rec.Demos)
	r.printer.Fprintf(w, "  %d Hot Leads\n", rec.Hot)
	for _, line := range rec.Immediate {
		fmt.Fprintf(w, "  - %s\n", line)
	}
	fmt.Fprintf(w, "Follow-up Plan:\n")
	r.printer.Fprintf(w, "  %d Warm Leads\n", rec.Warm)
	for _, line := range rec.FollowUp {
		fmt.Fprintf(w, "  - %s\n", line)
	}
	fmt.Fprintf(w, "Best Time to Call:\n")
	for _, line := range rec.CallTimes {
		fmt.Fprintf(w, "  - %s\n", line)
	}
}

func bar(n, top int) string {
	if top <= 0 || n <= 0 {
		return ""
	}
	width := n * maxBarWidth / top
	if width == 0 {
		width = 1
	}
	return strings.Repeat("#", width)
}
