package report

import (
	"fmt"

	"github.com/wattmatt/reportkit"
	"github.com/wattmatt/reportkit/compose"
)

// CableSchedule builds a cable schedule: one long paginated table of cable
// runs with voltage-drop flagging.
type CableSchedule struct {
	Data CableScheduleData
}

// Type implements Builder.
func (CableSchedule) Type() string { return "cable-schedule" }

// voltage drop above this percentage is flagged per SANS 10142-1.
const maxVoltageDropPct = 5.0

// Build lays out the schedule. The cable table is the document's only
// content section and may span any number of pages.
func (s CableSchedule) Build() (*reportkit.Document, error) {
	d := s.Data
	doc := &reportkit.Document{
		Title:    "Cable Schedule",
		Project:  d.Project.Name,
		Filename: fmt.Sprintf("cable-schedule-%s.pdf", d.Project.Number),
	}
	doc.Append(compose.Cover(compose.CoverData{
		LogoPNG:       d.Project.LogoPNG,
		Title:         "Cable Schedule",
		Subtitle:      "LV Reticulation",
		ProjectName:   d.Project.Name,
		ProjectNumber: d.Project.Number,
		PreparedFor:   []string{d.Project.Client},
		PreparedBy:    []string{d.Project.Consultant},
		Date:          d.Project.Date,
		Revision:      d.Project.Revision,
	}))

	cols := []compose.Column{
		{Header: "Tag", Key: "tag", Width: 24},
		{Header: "From", Key: "from", Width: 44},
		{Header: "To", Key: "to", Width: 44},
		{Header: "Size", Key: "size", Width: 28},
		{Header: "Length (m)", Key: "length", Width: 20, Align: compose.AlignRight},
		{Header: "V-drop %", Key: "vdrop", Width: 20, Align: compose.AlignRight},
	}
	rows := make([]compose.Row, 0, len(d.Cables))
	for _, c := range d.Cables {
		row := compose.Row{Cells: map[string]string{
			"tag":    c.Tag,
			"from":   c.From,
			"to":     c.To,
			"size":   c.Size,
			"length": fmt.Sprintf("%.0f", c.LengthM),
			"vdrop":  fmt.Sprintf("%.2f", c.VoltageDropPct),
		}}
		if c.VoltageDropPct > maxVoltageDropPct {
			row.CellColors = map[string]reportkit.RGBColor{"vdrop": reportkit.Palette.Danger}
		}
		rows = append(rows, row)
	}
	pages, _ := compose.Table(cols, rows, compose.TableOptions{Title: "Cable Schedule"})
	doc.Append(pages...)

	compose.Stamp(doc)
	return doc, nil
}
