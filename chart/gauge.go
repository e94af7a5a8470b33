package chart

import (
	"fmt"
	"math"

	"github.com/wattmatt/reportkit"
)

// GaugeOptions configures a semicircular gauge.
type GaugeOptions struct {
	Radius    float64 // default 18mm
	Thickness float64 // stroke width of the band; default 4mm
	DangerAt  float64 // value at or above which the band is Danger; default 90
	WarnAt    float64 // value at or above which the band is Warning; default 70
	Caption   string  // optional caption under the gauge
}

func (o *GaugeOptions) defaults() {
	if o.Radius <= 0 {
		o.Radius = 18
	}
	if o.Thickness <= 0 {
		o.Thickness = 4
	}
	if o.DangerAt <= 0 {
		o.DangerAt = 90
	}
	if o.WarnAt <= 0 {
		o.WarnAt = 70
	}
}

// GaugeColor returns the band color for a value against the configured
// thresholds.
func (o GaugeOptions) GaugeColor(value float64) reportkit.RGBColor {
	switch {
	case value >= o.DangerAt:
		return reportkit.Palette.Danger
	case value >= o.WarnAt:
		return reportkit.Palette.Warning
	default:
		return reportkit.Palette.Success
	}
}

// ClampPercent clamps v into the 0–100 range a gauge can display.
func ClampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Gauge draws a semicircular gauge centered on (cx, cy), where cy is the
// flat bottom of the semicircle, and returns the vertical position below it.
// The value is clamped to 0–100 before drawing, so the foreground arc never
// sweeps past the full semicircle.
func Gauge(p *reportkit.Page, cx, cy, value float64, opt GaugeOptions) float64 {
	opt.defaults()
	v := ClampPercent(value)
	r := opt.Radius

	// Background band: 9 o'clock to 3 o'clock across the top.
	p.Add(strokedArc(cx, cy, r, -math.Pi, 0, opt.Thickness, reportkit.Palette.Light))

	// Foreground band proportional to the value.
	if v > 0 {
		end := -math.Pi + (v/100)*math.Pi
		p.Add(strokedArc(cx, cy, r, -math.Pi, end, opt.Thickness, opt.GaugeColor(v)))
	}

	p.Add(reportkit.Text{
		X: cx, Y: cy - 2,
		S:      fmt.Sprintf("%.0f%%", v),
		Font:   reportkit.Font("B", 11),
		Color:  opt.GaugeColor(v),
		Anchor: reportkit.AnchorMiddle,
	})
	bottom := cy + 3
	if opt.Caption != "" {
		p.Add(reportkit.Text{
			X: cx, Y: cy + 5.5,
			S:      reportkit.TruncateText(opt.Caption, 2.2*r, 7.5),
			Font:   reportkit.Font("", 7.5),
			Color:  reportkit.Palette.Muted,
			Anchor: reportkit.AnchorMiddle,
		})
		bottom = cy + 8
	}
	return bottom
}
