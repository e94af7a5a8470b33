package report

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wattmatt/reportkit"
	"github.com/wattmatt/reportkit/chart"
	"github.com/wattmatt/reportkit/compose"
)

// CostReport builds the monthly cost report: cover, table of contents,
// executive summary, per-category detail, variation schedule, optional
// markdown commentary, cost-distribution charts and a project health
// dashboard.
type CostReport struct {
	Data CostReportData
}

// Type implements Builder.
func (CostReport) Type() string { return "cost-report" }

const costReportTitle = "Monthly Cost Report"

// Build lays out the full document. Content sections are built first and
// the table of contents last, once every section's final page position is
// known, then spliced in directly after the cover.
func (r CostReport) Build() (*reportkit.Document, error) {
	d := r.Data
	doc := &reportkit.Document{
		Title:    costReportTitle,
		Project:  d.Project.Name,
		Filename: fmt.Sprintf("cost-report-%s.pdf", d.Project.Number),
	}
	doc.Append(compose.Cover(compose.CoverData{
		LogoPNG:       d.Project.LogoPNG,
		Title:         costReportTitle,
		Subtitle:      "Electrical Installation Cost Control",
		ProjectName:   d.Project.Name,
		ProjectNumber: d.Project.Number,
		PreparedFor:   []string{d.Project.Client},
		PreparedBy:    []string{d.Project.Consultant},
		Date:          d.Project.Date,
		Revision:      d.Project.Revision,
	}))

	// Page numbers recorded here are final positions: the current page
	// count plus one for the page about to be appended and one for the
	// ToC page spliced in after the cover at the end.
	var entries []compose.TOCEntry
	nextPageNum := func() int { return len(doc.Pages) + 2 }

	entries = append(entries, compose.TOCEntry{Label: "Executive Summary", Page: nextPageNum()})
	doc.Append(r.summaryPages()...)

	detail, marks := r.categoryPages()
	base := nextPageNum()
	entries = append(entries, compose.TOCEntry{Label: "Cost Categories", Page: base})
	for _, m := range marks {
		entries = append(entries, compose.TOCEntry{Label: m.label, Page: base + m.pageOffset, Indent: true})
	}
	doc.Append(detail...)

	entries = append(entries, compose.TOCEntry{Label: "Variation Schedule", Page: nextPageNum()})
	doc.Append(r.variationPages()...)

	if d.Notes != "" {
		entries = append(entries, compose.TOCEntry{Label: "Commentary", Page: nextPageNum()})
		notes, _ := compose.MarkdownFlow([]byte(d.Notes), compose.TextOptions{Title: "Commentary"})
		doc.Append(notes...)
	}

	entries = append(entries, compose.TOCEntry{Label: "Cost Distribution", Page: nextPageNum()})
	doc.Append(r.chartsPage())

	entries = append(entries, compose.TOCEntry{Label: "Project Health", Page: nextPageNum()})
	doc.Append(r.healthPage())

	doc.InsertAfterCover(compose.TOC("Contents", entries))
	compose.Stamp(doc)
	return doc, nil
}

// totals aggregates the report-wide figures reused across sections.
func (r CostReport) totals() (budget, anticipated, variance decimal.Decimal) {
	for _, c := range r.Data.Categories {
		budget = budget.Add(c.Budget())
		anticipated = anticipated.Add(c.Anticipated())
	}
	return budget, anticipated, budget.Sub(anticipated)
}

func summaryColumns() []compose.Column {
	return []compose.Column{
		{Header: "Category", Key: "name", Width: 60},
		{Header: "Budget", Key: "budget", Width: 32, Align: compose.AlignRight},
		{Header: "Previous", Key: "previous", Width: 28, Align: compose.AlignRight},
		{Header: "Anticipated", Key: "anticipated", Width: 32, Align: compose.AlignRight},
		{Header: "Variance", Key: "variance", Width: 28, Align: compose.AlignRight},
	}
}

func (r CostReport) summaryPages() []*reportkit.Page {
	d := r.Data
	p := reportkit.NewPage()
	y := compose.SectionTitle(p, reportkit.ContentTop, "Executive Summary")

	budget, anticipated, variance := r.totals()
	y = compose.StatCards(p, y+2, []compose.StatCard{
		{Label: "Approved Budget", Value: FormatMoney(budget), Color: reportkit.Palette.Primary},
		{Label: "Anticipated Final", Value: FormatMoney(anticipated), Color: reportkit.Palette.Accent},
		{Label: "Variance", Value: FormatSigned(variance), Color: varianceColor(variance)},
		{Label: "Variations", Value: fmt.Sprintf("%d", len(d.Variations)), Color: reportkit.Palette.Muted},
	})

	rows := make([]compose.Row, 0, len(d.Categories)+1)
	for _, c := range d.Categories {
		v := c.Variance()
		rows = append(rows, compose.Row{
			Cells: map[string]string{
				"name":        c.Name,
				"budget":      FormatMoney(c.Budget()),
				"previous":    FormatMoney(c.Previous()),
				"anticipated": FormatMoney(c.Anticipated()),
				"variance":    FormatSigned(v),
			},
			CellColors: map[string]reportkit.RGBColor{"variance": varianceColor(v)},
		})
	}
	if len(rows) > 0 {
		light := reportkit.Palette.Light
		rows = append(rows, compose.Row{
			Cells: map[string]string{
				"name":        "Grand Total",
				"budget":      FormatMoney(budget),
				"anticipated": FormatMoney(anticipated),
				"variance":    FormatSigned(variance),
			},
			Bold:       true,
			Highlight:  &light,
			CellColors: map[string]reportkit.RGBColor{"variance": varianceColor(variance)},
		})
	}

	created, _ := compose.Table(summaryColumns(), rows, compose.TableOptions{
		StartPage: p, StartY: y + 2,
	})
	return append([]*reportkit.Page{p}, created...)
}

// catMark records on which page (0-based offset within the detail section)
// a category's table starts, for the table of contents.
type catMark struct {
	label      string
	pageOffset int
}

func detailColumns() []compose.Column {
	return []compose.Column{
		{Header: "Description", Key: "desc", Width: 92},
		{Header: "Budget", Key: "budget", Width: 30, Align: compose.AlignRight},
		{Header: "Anticipated", Key: "anticipated", Width: 30, Align: compose.AlignRight},
		{Header: "Variance", Key: "variance", Width: 28, Align: compose.AlignRight},
	}
}

func (r CostReport) categoryPages() ([]*reportkit.Page, []catMark) {
	d := r.Data
	page := reportkit.NewPage()
	pages := []*reportkit.Page{page}
	y := reportkit.ContentTop

	if len(d.Categories) == 0 {
		y = compose.SectionTitle(page, y, "Cost Categories")
		compose.Placeholder(page, y)
		return pages, nil
	}

	var marks []catMark
	for _, cat := range d.Categories {
		// A category heading with fewer than two rows under it would be
		// orphaned at the foot of the page.
		need := compose.TitleHeight + compose.HeaderBandHeight + 2*compose.RowHeight
		if y+need > reportkit.ContentBottom {
			page = reportkit.NewPage()
			pages = append(pages, page)
			y = reportkit.ContentTop
		}
		marks = append(marks, catMark{label: cat.Name, pageOffset: len(pages) - 1})

		rows := make([]compose.Row, 0, len(cat.Items)+1)
		for _, item := range cat.Items {
			v := item.Variance()
			rows = append(rows, compose.Row{
				Cells: map[string]string{
					"desc":        item.Description,
					"budget":      FormatMoney(item.Budget),
					"anticipated": FormatMoney(item.Anticipated),
					"variance":    FormatSigned(v),
				},
				CellColors: map[string]reportkit.RGBColor{"variance": varianceColor(v)},
			})
		}
		v := cat.Variance()
		light := reportkit.Palette.Light
		rows = append(rows, compose.Row{
			Cells: map[string]string{
				"desc":        "Subtotal",
				"budget":      FormatMoney(cat.Budget()),
				"anticipated": FormatMoney(cat.Anticipated()),
				"variance":    FormatSigned(v),
			},
			Bold:       true,
			Highlight:  &light,
			CellColors: map[string]reportkit.RGBColor{"variance": varianceColor(v)},
		})

		created, endY := compose.Table(detailColumns(), rows, compose.TableOptions{
			Title: cat.Name, StartPage: page, StartY: y,
		})
		pages = append(pages, created...)
		if len(created) > 0 {
			page = created[len(created)-1]
		}
		y = endY + 6
	}
	return pages, marks
}

func variationColumns() []compose.Column {
	return []compose.Column{
		{Header: "Code", Key: "code", Width: 22},
		{Header: "Description", Key: "desc", Width: 86},
		{Header: "Status", Key: "status", Width: 28, Align: compose.AlignCenter},
		{Header: "Amount", Key: "amount", Width: 44, Align: compose.AlignRight},
	}
}

func (r CostReport) variationPages() []*reportkit.Page {
	rows := make([]compose.Row, 0, len(r.Data.Variations))
	for _, v := range r.Data.Variations {
		rows = append(rows, compose.Row{
			Cells: map[string]string{
				"code":   v.Code,
				"desc":   v.Description,
				"status": v.Status,
				"amount": FormatSigned(v.Amount),
			},
			CellColors: map[string]reportkit.RGBColor{
				"status": statusColor(v.Status),
				"amount": varianceColor(v.Amount.Neg()),
			},
		})
	}
	pages, _ := compose.Table(variationColumns(), rows, compose.TableOptions{Title: "Variation Schedule"})
	return pages
}

func (r CostReport) chartsPage() *reportkit.Page {
	d := r.Data
	p := reportkit.NewPage()
	y := compose.SectionTitle(p, reportkit.ContentTop, "Cost Distribution")

	// Legend entries beyond the cap fold into a single "Other" segment so
	// the legend stays within the fixed page.
	const maxDonutSegments = 12
	segments := make([]chart.Segment, 0, len(d.Categories))
	other := 0.0
	for i, c := range d.Categories {
		b, _ := c.Budget().Float64()
		if i < maxDonutSegments {
			segments = append(segments, chart.Segment{Label: c.Name, Value: b})
			continue
		}
		other += b
	}
	if other > 0 {
		muted := reportkit.Palette.Muted
		segments = append(segments, chart.Segment{Label: "Other", Value: other, Color: &muted})
	}
	y = chart.Donut(p, reportkit.ContentLeft+34, y+34, segments, chart.DonutOptions{
		Legend:      true,
		CenterLabel: "budget",
		TotalFormat: func(total float64) string { return compactMoney(total) },
	})

	y = compose.SectionTitle(p, y+8, "Budget vs Anticipated")
	opt := chart.BarOptions{ShowValues: true, ValueFormat: compactMoney}

	// Two bars per category. The page does not paginate, so categories
	// whose bars would cross the content extent are dropped from the
	// comparison.
	cats := d.Categories
	fit := int((reportkit.ContentBottom - (y + 2)) / opt.Height(2))
	if fit < 0 {
		fit = 0
	}
	if len(cats) > fit {
		cats = cats[:fit]
	}
	items := make([]chart.Segment, 0, 2*len(cats))
	primary := reportkit.Palette.Primary
	accent := reportkit.Palette.Accent
	for _, c := range cats {
		b, _ := c.Budget().Float64()
		a, _ := c.Anticipated().Float64()
		items = append(items,
			chart.Segment{Label: c.Name + " budget", Value: b, Color: &primary},
			chart.Segment{Label: c.Name + " anticipated", Value: a, Color: &accent},
		)
	}
	chart.Bars(p, reportkit.ContentLeft, y+2, reportkit.ContentWidth, items, opt)
	return p
}

// RiskLevel classifies overall project risk from two independent
// thresholds on budget utilization and variance percentage:
// utilization over 110% or variance over 15% is high; utilization over
// 100% or variance over 5% is medium; anything else is low.
func RiskLevel(utilizationPct, variancePct float64) string {
	switch {
	case utilizationPct > 110 || variancePct > 15:
		return "high"
	case utilizationPct > 100 || variancePct > 5:
		return "medium"
	default:
		return "low"
	}
}

func riskColor(level string) reportkit.RGBColor {
	switch level {
	case "high":
		return reportkit.Palette.Danger
	case "medium":
		return reportkit.Palette.Warning
	default:
		return reportkit.Palette.Success
	}
}

func (r CostReport) healthPage() *reportkit.Page {
	d := r.Data
	p := reportkit.NewPage()
	y := compose.SectionTitle(p, reportkit.ContentTop, "Project Health")

	budget, anticipated, variance := r.totals()
	var utilization, variancePct float64
	if budget.IsPositive() {
		u, _ := anticipated.Div(budget).Float64()
		utilization = 100 * u
		v, _ := variance.Abs().Div(budget).Float64()
		variancePct = 100 * v
	}
	approved := 0
	for _, v := range d.Variations {
		if statusColor(v.Status) == reportkit.Palette.Success {
			approved++
		}
	}
	approvedPct := 0.0
	if len(d.Variations) > 0 {
		approvedPct = 100 * float64(approved) / float64(len(d.Variations))
	}

	// Three gauges across the content width.
	gy := y + 26
	third := reportkit.ContentWidth / 3
	chart.Gauge(p, reportkit.ContentLeft+third*0.5, gy, utilization, chart.GaugeOptions{
		Caption: "Budget utilization", DangerAt: 100, WarnAt: 90,
	})
	chart.Gauge(p, reportkit.ContentLeft+third*1.5, gy, variancePct, chart.GaugeOptions{
		Caption: "Variance", DangerAt: 15, WarnAt: 5,
	})
	y = chart.Gauge(p, reportkit.ContentLeft+third*2.5, gy, approvedPct, chart.GaugeOptions{
		Caption: "Variations approved", DangerAt: 101, WarnAt: 101,
	})

	y = compose.StatCards(p, y+6, []compose.StatCard{
		{Label: "Approved Budget", Value: FormatMoney(budget), Color: reportkit.Palette.Primary},
		{Label: "Anticipated Final", Value: FormatMoney(anticipated), Color: reportkit.Palette.Accent},
		{Label: "Projected Variance", Value: FormatSigned(variance), Color: varianceColor(variance)},
		{Label: "Open Variations", Value: fmt.Sprintf("%d", len(d.Variations)-approved), Color: reportkit.Palette.Muted},
	})

	approvedTotal := decimal.Zero
	for _, v := range d.Variations {
		if statusColor(v.Status) == reportkit.Palette.Success {
			approvedTotal = approvedTotal.Add(v.Amount)
		}
	}
	finCols := []compose.Column{
		{Header: "Item", Key: "item", Width: 120},
		{Header: "Amount", Key: "amount", Width: 60, Align: compose.AlignRight},
	}
	finRows := []compose.Row{
		{Cells: map[string]string{"item": "Original approved budget", "amount": FormatMoney(budget)}},
		{Cells: map[string]string{"item": "Approved variations", "amount": FormatSigned(approvedTotal)}},
		{Cells: map[string]string{"item": "Anticipated final cost", "amount": FormatMoney(anticipated)}},
		{
			Cells:      map[string]string{"item": "Projected variance", "amount": FormatSigned(variance)},
			Bold:       true,
			CellColors: map[string]reportkit.RGBColor{"amount": varianceColor(variance)},
		},
	}
	_, y = compose.Table(finCols, finRows, compose.TableOptions{
		Title: "Financial Summary", StartPage: p, StartY: y + 2,
	})

	level := RiskLevel(utilization, variancePct)
	banner := riskColor(level)
	p.Add(reportkit.Rect{
		X: reportkit.ContentLeft, Y: y + 8, W: reportkit.ContentWidth, H: 14,
		Fill: &banner, Radius: 1.5,
	})
	p.Add(reportkit.Text{
		X: reportkit.PageWidth / 2, Y: y + 17,
		S:      fmt.Sprintf("OVERALL RISK: %s", levelLabel(level)),
		Font:   reportkit.Font("B", 12),
		Color:  reportkit.White,
		Anchor: reportkit.AnchorMiddle,
	})
	return p
}

func levelLabel(level string) string {
	switch level {
	case "high":
		return "HIGH"
	case "medium":
		return "MEDIUM"
	default:
		return "LOW"
	}
}
