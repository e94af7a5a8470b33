package compose

import (
	"strconv"
	"strings"

	"github.com/wattmatt/reportkit"
)

// TOCEntry is one table-of-contents line. Page numbers must reflect final
// page positions: builders lay out all content first, record each section's
// starting page, then build the ToC last and splice it in after the cover
// with Document.InsertAfterCover.
type TOCEntry struct {
	Label  string
	Page   int
	Indent bool
}

const (
	tocFontSize  = 10.5
	tocLineGap   = 7.5
	tocIndent    = 7.0
	tocNumColumn = 12.0 // width reserved for the page number
)

// TOC builds a table-of-contents page: one line per entry with a
// right-aligned page number and a dot leader filling the gap, sized with
// the same character-width estimate used for wrapping.
func TOC(title string, entries []TOCEntry) *reportkit.Page {
	p := reportkit.NewPage()
	y := SectionTitle(p, reportkit.ContentTop, title)
	y += 4

	for _, e := range entries {
		x := reportkit.ContentLeft
		if e.Indent {
			x += tocIndent
		}
		labelMax := reportkit.ContentRight - tocNumColumn - x - 4
		label := reportkit.TruncateText(e.Label, labelMax, tocFontSize)

		p.Add(reportkit.Text{
			X: x, Y: y, S: label,
			Font:  reportkit.Font("", tocFontSize),
			Color: reportkit.Palette.Dark,
		})
		p.Add(reportkit.Text{
			X: reportkit.ContentRight, Y: y,
			S:      strconv.Itoa(e.Page),
			Font:   reportkit.Font("", tocFontSize),
			Color:  reportkit.Palette.Dark,
			Anchor: reportkit.AnchorEnd,
		})

		// Dot leader between label end and the number column.
		start := x + reportkit.EstimateWidth(label, tocFontSize) + 2
		gap := reportkit.ContentRight - tocNumColumn - start
		if n := int(gap / reportkit.CharWidth(tocFontSize)); n > 0 {
			p.Add(reportkit.Text{
				X: start, Y: y,
				S:     strings.Repeat(".", n),
				Font:  reportkit.Font("", tocFontSize),
				Color: reportkit.Palette.Muted,
			})
		}
		y += tocLineGap
	}
	return p
}
