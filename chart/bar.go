package chart

import (
	"fmt"

	"github.com/wattmatt/reportkit"
)

// BarOptions configures a horizontal bar chart.
type BarOptions struct {
	BarHeight   float64 // default 6mm
	Gap         float64 // default 3mm
	LabelWidth  float64 // left label column; default 45mm
	ShowValues  bool    // numeric value labels to the right of each bar
	ValueFormat func(v float64) string
}

func (o *BarOptions) defaults() {
	if o.BarHeight <= 0 {
		o.BarHeight = 6
	}
	if o.Gap <= 0 {
		o.Gap = 3
	}
	if o.LabelWidth <= 0 {
		o.LabelWidth = 45
	}
	if o.ValueFormat == nil {
		o.ValueFormat = func(v float64) string { return fmt.Sprintf("%.0f", v) }
	}
}

// Height returns the vertical extent Bars will consume for n items, after
// defaults are applied. Callers placing bars on a fixed page use it to cap
// the item count against the remaining space.
func (o BarOptions) Height(n int) float64 {
	o.defaults()
	return float64(n) * (o.BarHeight + o.Gap)
}

// Bars draws horizontal bars starting at (x, y) within width millimetres
// and returns the vertical position below the last bar. Each bar is scaled
// against the maximum value in the set, not its own value. Empty or
// all-zero input renders a muted placeholder line instead.
func Bars(p *reportkit.Page, x, y, width float64, items []Segment, opt BarOptions) float64 {
	opt.defaults()

	maxVal := 0.0
	for _, it := range items {
		if it.Value > maxVal {
			maxVal = it.Value
		}
	}
	if len(items) == 0 || maxVal <= 0 {
		p.Add(reportkit.Text{
			X: x, Y: y + 4, S: "No data available",
			Font:  reportkit.Font("I", 9),
			Color: reportkit.Palette.Muted,
		})
		return y + 10
	}

	barX := x + opt.LabelWidth
	barW := width - opt.LabelWidth
	if opt.ShowValues {
		barW -= 18
	}
	if barW < 10 {
		barW = 10
	}

	for i, it := range items {
		c := segmentColor(it, i)
		h := opt.BarHeight
		w := barW * (it.Value / maxVal)

		p.Add(reportkit.Text{
			X: barX - 2, Y: y + h - 1.5,
			S:      reportkit.TruncateText(it.Label, opt.LabelWidth-2, 8),
			Font:   reportkit.Font("", 8),
			Color:  reportkit.Palette.Dark,
			Anchor: reportkit.AnchorEnd,
		})
		track := reportkit.Palette.Light
		p.Add(reportkit.Rect{X: barX, Y: y, W: barW, H: h, Fill: &track, Radius: 1})
		if w > 0 {
			p.Add(reportkit.Rect{X: barX, Y: y, W: w, H: h, Fill: &c, Radius: 1})
		}
		if opt.ShowValues {
			p.Add(reportkit.Text{
				X: barX + barW + 2, Y: y + h - 1.5,
				S:     opt.ValueFormat(it.Value),
				Font:  reportkit.Font("", 8),
				Color: reportkit.Palette.Muted,
			})
		}
		y += h + opt.Gap
	}
	return y
}
