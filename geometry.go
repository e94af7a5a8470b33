package reportkit

// Physical page geometry. A4 portrait, millimetres. Every page in every
// document uses these dimensions; builders must not override them per page.
const (
	PageWidth  = 210.0
	PageHeight = 297.0

	// Margin is the uniform page margin.
	Margin = 15.0

	// HeaderClearance reserves room below the running header rule;
	// FooterClearance reserves room above the "Page X of Y" footer.
	HeaderClearance = 12.0
	FooterClearance = 12.0
)

// Content extents derived from the page geometry. Paginated helpers treat
// ContentBottom as the fixed overflow threshold regardless of what is being
// placed.
const (
	ContentLeft   = Margin
	ContentRight  = PageWidth - Margin
	ContentWidth  = PageWidth - 2*Margin
	ContentTop    = Margin + HeaderClearance
	ContentBottom = PageHeight - Margin - FooterClearance
)

// Point is a position on a page, in millimetres from the top-left corner.
type Point struct {
	X, Y float64
}
