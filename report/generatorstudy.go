package report

import (
	"fmt"

	"github.com/wattmatt/reportkit"
	"github.com/wattmatt/reportkit/chart"
	"github.com/wattmatt/reportkit/compose"
)

// GeneratorStudy builds a standby generator study: utilization gauges per
// set, a fuel-consumption table and tank autonomy bars.
type GeneratorStudy struct {
	Data GeneratorStudyData
}

// Type implements Builder.
func (GeneratorStudy) Type() string { return "generator-study" }

// Build lays out the study.
func (g GeneratorStudy) Build() (*reportkit.Document, error) {
	d := g.Data
	doc := &reportkit.Document{
		Title:    "Standby Generator Study",
		Project:  d.Project.Name,
		Filename: fmt.Sprintf("generator-study-%s.pdf", d.Project.Number),
	}
	doc.Append(compose.Cover(compose.CoverData{
		LogoPNG:       d.Project.LogoPNG,
		Title:         "Standby Generator Study",
		Subtitle:      "Capacity, Fuel and Autonomy",
		ProjectName:   d.Project.Name,
		ProjectNumber: d.Project.Number,
		PreparedFor:   []string{d.Project.Client},
		PreparedBy:    []string{d.Project.Consultant},
		Date:          d.Project.Date,
		Revision:      d.Project.Revision,
	}))

	doc.Append(g.utilizationPage())
	doc.Append(g.fuelPages()...)

	compose.Stamp(doc)
	return doc, nil
}

func (g GeneratorStudy) utilizationPage() *reportkit.Page {
	d := g.Data
	p := reportkit.NewPage()
	y := compose.SectionTitle(p, reportkit.ContentTop, "Set Utilization")

	if len(d.Sets) == 0 {
		compose.Placeholder(p, y)
		return p
	}

	// Gauges laid out three per row, at most two rows; the dashboard page
	// does not paginate, so sets beyond the cap appear only in the bars
	// and fuel sections.
	const maxGaugeSets = 6
	sets := d.Sets
	if len(sets) > maxGaugeSets {
		sets = sets[:maxGaugeSets]
	}
	perRow := 3
	cell := reportkit.ContentWidth / float64(perRow)
	gy := y + 24
	var rowBottom float64
	for i, set := range sets {
		col := i % perRow
		if i > 0 && col == 0 {
			gy = rowBottom + 14
		}
		cx := reportkit.ContentLeft + cell*(float64(col)+0.5)
		rowBottom = chart.Gauge(p, cx, gy, set.Utilization(), chart.GaugeOptions{
			Caption: fmt.Sprintf("%s (%.0f kVA)", set.Name, set.CapacityKVA),
		})
	}
	y = rowBottom + 10

	y = compose.SectionTitle(p, y, "Demand vs Capacity")
	opt := chart.BarOptions{
		ShowValues:  true,
		ValueFormat: func(v float64) string { return fmt.Sprintf("%.0f kVA", v) },
	}
	barSets := d.Sets
	fit := int((reportkit.ContentBottom - (y + 2)) / opt.Height(2))
	if fit < 0 {
		fit = 0
	}
	if len(barSets) > fit {
		barSets = barSets[:fit]
	}
	primary := reportkit.Palette.Primary
	accent := reportkit.Palette.Accent
	items := make([]chart.Segment, 0, 2*len(barSets))
	for _, set := range barSets {
		items = append(items,
			chart.Segment{Label: set.Name + " capacity", Value: set.CapacityKVA, Color: &primary},
			chart.Segment{Label: set.Name + " demand", Value: set.DemandKVA, Color: &accent},
		)
	}
	chart.Bars(p, reportkit.ContentLeft, y+2, reportkit.ContentWidth, items, opt)
	return p
}

func (g GeneratorStudy) fuelPages() []*reportkit.Page {
	d := g.Data
	cols := []compose.Column{
		{Header: "Set", Key: "set", Width: 50},
		{Header: "Load %", Key: "load", Width: 30, Align: compose.AlignRight},
		{Header: "Consumption (l/h)", Key: "lph", Width: 50, Align: compose.AlignRight},
		{Header: "Autonomy (h)", Key: "autonomy", Width: 50, Align: compose.AlignRight},
	}
	rows := make([]compose.Row, 0, len(d.Fuel))
	for _, f := range d.Fuel {
		row := compose.Row{Cells: map[string]string{
			"set":      f.Set,
			"load":     fmt.Sprintf("%.0f", f.LoadPct),
			"lph":      fmt.Sprintf("%.1f", f.LitresPerHour),
			"autonomy": fmt.Sprintf("%.1f", f.AutonomyHours),
		}}
		// Under 8 hours of fuel at this load point fails the brief.
		if f.AutonomyHours < 8 {
			row.CellColors = map[string]reportkit.RGBColor{"autonomy": reportkit.Palette.Danger}
		}
		rows = append(rows, row)
	}
	pages, y := compose.Table(cols, rows, compose.TableOptions{Title: "Fuel Consumption"})

	if len(rows) > 0 && len(pages) > 0 {
		// Autonomy comparison at full load on whatever page the table
		// finished, if it fits; otherwise on a fresh page.
		items := make([]chart.Segment, 0, len(d.Fuel))
		for _, f := range d.Fuel {
			if f.LoadPct >= 100 {
				items = append(items, chart.Segment{Label: f.Set, Value: f.AutonomyHours})
			}
		}
		if len(items) > 0 {
			page := pages[len(pages)-1]
			need := compose.TitleHeight + float64(len(items))*9 + 10
			if y+need > reportkit.ContentBottom {
				page = reportkit.NewPage()
				pages = append(pages, page)
				y = reportkit.ContentTop
			}
			y = compose.SectionTitle(page, y+6, "Autonomy at Full Load")
			chart.Bars(page, reportkit.ContentLeft, y+2, reportkit.ContentWidth, items, chart.BarOptions{
				ShowValues:  true,
				ValueFormat: func(v float64) string { return fmt.Sprintf("%.1f h", v) },
			})
		}
	}
	return pages
}
