package reportkit

// RGBColor represents an RGB color value.
type RGBColor struct {
	R, G, B int
}

// FontSpec defines font properties for text rendering.
type FontSpec struct {
	Family string
	Style  string  // "", "B", "I", "BI"
	Size   float64 // in points
}

// Anchor controls how a text run is positioned relative to its X coordinate.
type Anchor int

const (
	AnchorStart  Anchor = iota // X is the left edge of the text
	AnchorMiddle               // X is the horizontal center
	AnchorEnd                  // X is the right edge
)

// BrandPalette is the single shared color scheme used by every document
// type. Centralizing it keeps output visually consistent and makes the
// conformance "brand fill detected" inspection meaningful.
type BrandPalette struct {
	Primary RGBColor // cover fills, header bands
	Accent  RGBColor // rules, secondary bands
	Light   RGBColor // light backgrounds, alternating table rows
	Dark    RGBColor // body text
	Muted   RGBColor // captions, placeholder text
	Border  RGBColor // table and card borders
	Success RGBColor
	Warning RGBColor
	Danger  RGBColor
}

// Palette is the brand palette. Treated as immutable; nothing mutates it at
// runtime.
var Palette = BrandPalette{
	Primary: RGBColor{R: 16, G: 54, B: 92},
	Accent:  RGBColor{R: 233, G: 140, B: 21},
	Light:   RGBColor{R: 243, G: 246, B: 250},
	Dark:    RGBColor{R: 33, G: 37, B: 41},
	Muted:   RGBColor{R: 120, G: 128, B: 138},
	Border:  RGBColor{R: 210, G: 215, B: 222},
	Success: RGBColor{R: 32, G: 140, B: 76},
	Warning: RGBColor{R: 217, G: 158, B: 27},
	Danger:  RGBColor{R: 196, G: 49, B: 49},
}

// White is used for strokes separating chart segments and for text on dark
// fills.
var White = RGBColor{R: 255, G: 255, B: 255}

// FontFamily is the single typeface used throughout. Only the built-in
// PDF core fonts are used, so no font files ship with the module.
const FontFamily = "Helvetica"

// Font returns a FontSpec in the standard family.
func Font(style string, size float64) FontSpec {
	return FontSpec{Family: FontFamily, Style: style, Size: size}
}
