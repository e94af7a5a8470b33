package compose

import (
	"fmt"

	"github.com/wattmatt/reportkit"
)

// Vertical placement of the running decorations.
const (
	headerRuleY     = 11.0
	headerBaselineY = 8.5
	footerBaselineY = reportkit.PageHeight - 8.0
)

// StampHeaders appends the running header (a thin accent rule with the
// report title on the left and the project name on the right) to every
// page except the cover at index 0.
//
// The stamping passes mutate pages in place and must be invoked exactly
// once per document; calling either pass twice double-stamps.
func StampHeaders(pages []*reportkit.Page, reportTitle, projectName string) {
	if len(pages) < 2 {
		return
	}
	for _, p := range pages[1:] {
		p.Add(reportkit.Line{
			X1: reportkit.ContentLeft, Y1: headerRuleY,
			X2: reportkit.ContentRight, Y2: headerRuleY,
			Color: reportkit.Palette.Accent, Width: 0.5,
		})
		p.Add(reportkit.Text{
			X: reportkit.ContentLeft, Y: headerBaselineY,
			S:     reportkit.TruncateText(reportTitle, reportkit.ContentWidth/2, 8),
			Font:  reportkit.Font("", 8),
			Color: reportkit.Palette.Muted,
		})
		p.Add(reportkit.Text{
			X: reportkit.ContentRight, Y: headerBaselineY,
			S:      reportkit.TruncateText(projectName, reportkit.ContentWidth/2, 8),
			Font:   reportkit.Font("", 8),
			Color:  reportkit.Palette.Muted,
			Anchor: reportkit.AnchorEnd,
		})
	}
}

// StampFooters appends a "Page i of N" footer to every page except the
// cover. i is 1-based over the decorated subset and N is that subset's
// count, so a five-page document is footed "Page 1 of 4" through
// "Page 4 of 4".
func StampFooters(pages []*reportkit.Page, reportTitle string) {
	if len(pages) < 2 {
		return
	}
	decorated := pages[1:]
	n := len(decorated)
	for i, p := range decorated {
		p.Add(reportkit.Text{
			X: reportkit.ContentLeft, Y: footerBaselineY,
			S:     reportkit.TruncateText(reportTitle, reportkit.ContentWidth/2, 7.5),
			Font:  reportkit.Font("", 7.5),
			Color: reportkit.Palette.Muted,
		})
		p.Add(reportkit.Text{
			X: reportkit.ContentRight, Y: footerBaselineY,
			S:      fmt.Sprintf("Page %d of %d", i+1, n),
			Font:   reportkit.Font("", 7.5),
			Color:  reportkit.Palette.Muted,
			Anchor: reportkit.AnchorEnd,
		})
	}
}

// Stamp applies both decoration passes in order.
func Stamp(doc *reportkit.Document) {
	StampHeaders(doc.Pages, doc.Title, doc.Project)
	StampFooters(doc.Pages, doc.Title)
}
