// Package chart renders donut, horizontal bar and semicircular gauge charts
// onto reportkit pages.
//
// All renderers are pure functions of their inputs: they append primitives
// to the supplied page, return the next vertical layout position, and keep
// no state between calls. Curved outlines are flattened into short line
// segments rather than emitted as arc commands.
package chart

import (
	"math"

	"github.com/wattmatt/reportkit"
)

// Segment is one labeled value in a donut or bar chart. A nil Color picks
// from the series palette by index.
type Segment struct {
	Label string
	Value float64
	Color *reportkit.RGBColor
}

// seriesPalette colors segments and bars that carry no explicit color.
var seriesPalette = []reportkit.RGBColor{
	reportkit.Palette.Primary,
	reportkit.Palette.Accent,
	reportkit.Palette.Success,
	reportkit.Palette.Warning,
	reportkit.Palette.Danger,
	reportkit.Palette.Muted,
}

func segmentColor(s Segment, i int) reportkit.RGBColor {
	if s.Color != nil {
		return *s.Color
	}
	return seriesPalette[i%len(seriesPalette)]
}

// arcStep is the angular resolution, in radians, used when flattening arcs
// into line segments.
const arcStep = math.Pi / 90 // 2°

// arcPoints samples an arc of the circle centered at (cx, cy) from angle a0
// to a1 (radians, increasing clockwise in page coordinates, 0 = 3 o'clock).
func arcPoints(cx, cy, r, a0, a1 float64) []reportkit.Point {
	if a1 < a0 {
		a0, a1 = a1, a0
	}
	n := int(math.Ceil((a1 - a0) / arcStep))
	if n < 1 {
		n = 1
	}
	pts := make([]reportkit.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(n)
		pts = append(pts, reportkit.Point{
			X: cx + r*math.Cos(a),
			Y: cy + r*math.Sin(a),
		})
	}
	return pts
}

// annularWedge builds a closed path for a ring segment between innerR and
// outerR spanning angles a0..a1.
func annularWedge(cx, cy, innerR, outerR, a0, a1 float64, fill reportkit.RGBColor) reportkit.Path {
	outer := arcPoints(cx, cy, outerR, a0, a1)
	inner := arcPoints(cx, cy, innerR, a0, a1)

	ops := make([]reportkit.PathOp, 0, len(outer)+len(inner)+2)
	ops = append(ops, reportkit.PathOp{Kind: reportkit.PathMoveTo, X: outer[0].X, Y: outer[0].Y})
	for _, p := range outer[1:] {
		ops = append(ops, reportkit.PathOp{Kind: reportkit.PathLineTo, X: p.X, Y: p.Y})
	}
	for i := len(inner) - 1; i >= 0; i-- {
		ops = append(ops, reportkit.PathOp{Kind: reportkit.PathLineTo, X: inner[i].X, Y: inner[i].Y})
	}
	ops = append(ops, reportkit.PathOp{Kind: reportkit.PathClose})

	f := fill
	stroke := reportkit.White
	return reportkit.Path{Ops: ops, Fill: &f, Stroke: &stroke, StrokeWidth: 0.4}
}

// strokedArc builds an open polyline path approximating an arc, used for
// gauge bands.
func strokedArc(cx, cy, r, a0, a1, width float64, color reportkit.RGBColor) reportkit.Path {
	pts := arcPoints(cx, cy, r, a0, a1)
	ops := make([]reportkit.PathOp, 0, len(pts))
	ops = append(ops, reportkit.PathOp{Kind: reportkit.PathMoveTo, X: pts[0].X, Y: pts[0].Y})
	for _, p := range pts[1:] {
		ops = append(ops, reportkit.PathOp{Kind: reportkit.PathLineTo, X: p.X, Y: p.Y})
	}
	c := color
	return reportkit.Path{Ops: ops, Stroke: &c, StrokeWidth: width}
}
