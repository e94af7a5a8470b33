package compose

import "github.com/wattmatt/reportkit"

// StatCard is one KPI card: a caption, a prominent value and an accent
// color for the value and keyline.
type StatCard struct {
	Label string
	Value string
	Color reportkit.RGBColor
}

const (
	cardHeight = 20.0
	cardGap    = 4.0
)

// StatCards draws the cards as equal-width rounded panels in a single row
// starting at vertical position y, and returns the position immediately
// below them for layout chaining.
func StatCards(p *reportkit.Page, y float64, cards []StatCard) float64 {
	if len(cards) == 0 {
		return y
	}
	w := (reportkit.ContentWidth - cardGap*float64(len(cards)-1)) / float64(len(cards))

	x := reportkit.ContentLeft
	for _, c := range cards {
		border := reportkit.Palette.Border
		fill := reportkit.White
		accent := c.Color
		p.Add(reportkit.Rect{
			X: x, Y: y, W: w, H: cardHeight,
			Fill: &fill, Stroke: &border, StrokeWidth: 0.3, Radius: 1.5,
		})
		p.Add(reportkit.Rect{X: x, Y: y, W: 1.2, H: cardHeight, Fill: &accent})
		p.Add(reportkit.Text{
			X: x + w/2, Y: y + 9.5,
			S:      reportkit.TruncateText(c.Value, w-4, 12),
			Font:   reportkit.Font("B", 12),
			Color:  c.Color,
			Anchor: reportkit.AnchorMiddle,
		})
		p.Add(reportkit.Text{
			X: x + w/2, Y: y + 16,
			S:      reportkit.TruncateText(c.Label, w-4, 7.5),
			Font:   reportkit.Font("", 7.5),
			Color:  reportkit.Palette.Muted,
			Anchor: reportkit.AnchorMiddle,
		})
		x += w + cardGap
	}
	return y + cardHeight + cardGap
}
