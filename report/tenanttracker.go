package report

import (
	"fmt"

	"github.com/wattmatt/reportkit"
	"github.com/wattmatt/reportkit/chart"
	"github.com/wattmatt/reportkit/compose"
)

// TenantTracker builds a tenant connection tracker: connection progress
// stat cards, a status donut and the full tenant table.
type TenantTracker struct {
	Data TenantTrackerData
}

// Type implements Builder.
func (TenantTracker) Type() string { return "tenant-tracker" }

// Build lays out the tracker.
func (t TenantTracker) Build() (*reportkit.Document, error) {
	d := t.Data
	doc := &reportkit.Document{
		Title:    "Tenant Connection Tracker",
		Project:  d.Project.Name,
		Filename: fmt.Sprintf("tenant-tracker-%s.pdf", d.Project.Number),
	}
	doc.Append(compose.Cover(compose.CoverData{
		LogoPNG:       d.Project.LogoPNG,
		Title:         "Tenant Connection Tracker",
		Subtitle:      "Metering and Connections",
		ProjectName:   d.Project.Name,
		ProjectNumber: d.Project.Number,
		PreparedFor:   []string{d.Project.Client},
		PreparedBy:    []string{d.Project.Consultant},
		Date:          d.Project.Date,
		Revision:      d.Project.Revision,
	}))

	p := reportkit.NewPage()
	y := compose.SectionTitle(p, reportkit.ContentTop, "Connection Status")

	counts := map[string]int{}
	var totalLoad float64
	for _, tn := range d.Tenants {
		counts[tn.Status]++
		totalLoad += tn.LoadKVA
	}
	y = compose.StatCards(p, y+2, []compose.StatCard{
		{Label: "Tenants", Value: fmt.Sprintf("%d", len(d.Tenants)), Color: reportkit.Palette.Primary},
		{Label: "Connected", Value: fmt.Sprintf("%d", counts["connected"]), Color: reportkit.Palette.Success},
		{Label: "Pending", Value: fmt.Sprintf("%d", counts["pending"]), Color: reportkit.Palette.Warning},
		{Label: "Total Load", Value: fmt.Sprintf("%.0f kVA", totalLoad), Color: reportkit.Palette.Accent},
	})

	success := reportkit.Palette.Success
	warning := reportkit.Palette.Warning
	muted := reportkit.Palette.Muted
	y = chart.Donut(p, reportkit.ContentLeft+34, y+38, []chart.Segment{
		{Label: "Connected", Value: float64(counts["connected"]), Color: &success},
		{Label: "Pending", Value: float64(counts["pending"]), Color: &warning},
		{Label: "Vacant", Value: float64(counts["vacant"]), Color: &muted},
	}, chart.DonutOptions{
		Legend:      true,
		CenterLabel: "tenants",
		TotalFormat: func(total float64) string { return fmt.Sprintf("%.0f", total) },
	})

	cols := []compose.Column{
		{Header: "Unit", Key: "unit", Width: 22},
		{Header: "Tenant", Key: "name", Width: 70},
		{Header: "Area (sqm)", Key: "area", Width: 28, Align: compose.AlignRight},
		{Header: "Load (kVA)", Key: "load", Width: 28, Align: compose.AlignRight},
		{Header: "Status", Key: "status", Width: 32, Align: compose.AlignCenter},
	}
	rows := make([]compose.Row, 0, len(d.Tenants))
	for _, tn := range d.Tenants {
		rows = append(rows, compose.Row{
			Cells: map[string]string{
				"unit":   tn.Unit,
				"name":   tn.Name,
				"area":   fmt.Sprintf("%.0f", tn.AreaSQM),
				"load":   fmt.Sprintf("%.1f", tn.LoadKVA),
				"status": tn.Status,
			},
			CellColors: map[string]reportkit.RGBColor{"status": tenantStatusColor(tn.Status)},
		})
	}
	created, _ := compose.Table(cols, rows, compose.TableOptions{
		Title: "Tenant Schedule", StartPage: p, StartY: y + 8,
	})
	doc.Append(p)
	doc.Append(created...)

	compose.Stamp(doc)
	return doc, nil
}

func tenantStatusColor(status string) reportkit.RGBColor {
	switch status {
	case "connected":
		return reportkit.Palette.Success
	case "pending":
		return reportkit.Palette.Warning
	default:
		return reportkit.Palette.Muted
	}
}
