// Package compose provides the reusable layout grammar shared by every
// document type: cover pages, running header/footer stamping, paginated
// tables and text, tables of contents and stat-card rows.
//
// The paginated helpers share one overflow policy: an atomic row or line is
// never split across two pages, the section title and any header band are
// repeated on continuation pages, and the overflow threshold is the fixed
// reportkit.ContentBottom constant, never a function of the content being
// placed.
package compose

import "github.com/wattmatt/reportkit"

// Fixed vertical metrics used by the paginated helpers.
const (
	// RowHeight is the fixed height of one table row. Rows are atomic:
	// a row that does not fit starts a new page.
	RowHeight = 8.0

	// HeaderBandHeight is the height of a table's column header band.
	HeaderBandHeight = 9.0

	// TitleHeight is the vertical space consumed by a section title,
	// including the gap below it.
	TitleHeight = 10.0

	// continuedSuffix marks a repeated section title on an overflow page.
	continuedSuffix = " (continued)"
)

// SectionTitle draws a section title at (ContentLeft, y) and returns the
// vertical position below it.
func SectionTitle(p *reportkit.Page, y float64, title string) float64 {
	p.Add(reportkit.Text{
		X: reportkit.ContentLeft, Y: y + 5,
		S:     reportkit.TruncateText(title, reportkit.ContentWidth, 13),
		Font:  reportkit.Font("B", 13),
		Color: reportkit.Palette.Primary,
	})
	return y + TitleHeight
}

// Placeholder draws the standard "No data available" indicator used when a
// section's input list is empty.
func Placeholder(p *reportkit.Page, y float64) float64 {
	p.Add(reportkit.Text{
		X: reportkit.ContentLeft, Y: y + 5,
		S:     "No data available",
		Font:  reportkit.Font("I", 10),
		Color: reportkit.Palette.Muted,
	})
	return y + 10
}
