package chart

import (
	"fmt"
	"math"

	"github.com/wattmatt/reportkit"
)

// minShare is the smallest segment share that is still drawn. Anything
// smaller would produce a degenerate zero-angle wedge.
const minShare = 0.001

// DonutOptions configures a donut chart.
type DonutOptions struct {
	OuterRadius float64 // default 28mm
	InnerRatio  float64 // inner radius as a fraction of outer; default 0.45
	Legend      bool    // draw a side legend with percentage labels
	CenterLabel string  // text under the total in the center; optional
	TotalFormat func(total float64) string
}

func (o *DonutOptions) defaults() {
	if o.OuterRadius <= 0 {
		o.OuterRadius = 28
	}
	if o.InnerRatio <= 0 || o.InnerRatio >= 1 {
		o.InnerRatio = 0.45
	}
	if o.TotalFormat == nil {
		o.TotalFormat = func(total float64) string {
			return fmt.Sprintf("%.0f", total)
		}
	}
}

// Donut draws a donut chart centered at (cx, cy) and returns the vertical
// position immediately below it. Segments are partitioned by their share of
// the total, starting at the top and proceeding clockwise. A zero or
// negative total renders a muted placeholder ring with a "No data" label
// instead of dividing by zero.
func Donut(p *reportkit.Page, cx, cy float64, segments []Segment, opt DonutOptions) float64 {
	opt.defaults()
	outer := opt.OuterRadius
	inner := outer * opt.InnerRatio

	total := 0.0
	for _, s := range segments {
		if s.Value > 0 {
			total += s.Value
		}
	}

	if total <= 0 {
		p.Add(annularWedge(cx, cy, inner, outer, 0, 2*math.Pi, reportkit.Palette.Light))
		p.Add(reportkit.Text{
			X: cx, Y: cy + 1.5, S: "No data",
			Font:   reportkit.Font("", 9),
			Color:  reportkit.Palette.Muted,
			Anchor: reportkit.AnchorMiddle,
		})
		return cy + outer + 4
	}

	angle := -math.Pi / 2 // start at 12 o'clock
	for i, s := range segments {
		if s.Value <= 0 {
			continue
		}
		share := s.Value / total
		if share < minShare {
			continue
		}
		sweep := share * 2 * math.Pi
		p.Add(annularWedge(cx, cy, inner, outer, angle, angle+sweep, segmentColor(s, i)))
		angle += sweep
	}

	p.Add(reportkit.Text{
		X: cx, Y: cy + 1, S: opt.TotalFormat(total),
		Font:   reportkit.Font("B", 12),
		Color:  reportkit.Palette.Dark,
		Anchor: reportkit.AnchorMiddle,
	})
	if opt.CenterLabel != "" {
		p.Add(reportkit.Text{
			X: cx, Y: cy + 6, S: opt.CenterLabel,
			Font:   reportkit.Font("", 7),
			Color:  reportkit.Palette.Muted,
			Anchor: reportkit.AnchorMiddle,
		})
	}

	bottom := cy + outer + 4
	if opt.Legend {
		if ly := drawLegend(p, cx+outer+8, cy-outer+4, segments, total); ly > bottom {
			bottom = ly
		}
	}
	return bottom
}

// drawLegend returns the vertical position below the last legend line, so
// a legend taller than the donut itself still counts toward the chart's
// extent.
func drawLegend(p *reportkit.Page, x, y float64, segments []Segment, total float64) float64 {
	const lineH = 6.5
	for i, s := range segments {
		if s.Value <= 0 || s.Value/total < minShare {
			continue
		}
		c := segmentColor(s, i)
		p.Add(reportkit.Rect{X: x, Y: y - 3, W: 3.5, H: 3.5, Fill: &c})
		label := fmt.Sprintf("%s (%.1f%%)", s.Label, 100*s.Value/total)
		p.Add(reportkit.Text{
			X: x + 5.5, Y: y,
			S:     reportkit.TruncateText(label, 55, 8),
			Font:  reportkit.Font("", 8),
			Color: reportkit.Palette.Dark,
		})
		y += lineH
	}
	return y
}
