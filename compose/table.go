package compose

import "github.com/wattmatt/reportkit"

// Align is a horizontal cell alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Column defines one table column. Widths are caller-supplied in
// millimetres and must sum to at most reportkit.ContentWidth; there is no
// automatic width negotiation. Cell text that does not fit is truncated
// with an ellipsis, never wrapped.
type Column struct {
	Header string
	Key    string
	Width  float64
	Align  Align
}

// Row is one table row: a key→value cell mapping plus optional styling
// overrides used for subtotal and total rows.
type Row struct {
	Cells      map[string]string
	Bold       bool
	Highlight  *reportkit.RGBColor            // background override
	CellColors map[string]reportkit.RGBColor // per-cell text color override
}

// TableOptions configures a paginated table.
type TableOptions struct {
	// Title is drawn above the table and repeated, suffixed
	// " (continued)", on every continuation page.
	Title string

	// StartPage, when non-nil, lets the table begin partway down an
	// existing page at StartY. When nil the table opens its own page at
	// reportkit.ContentTop.
	StartPage *reportkit.Page
	StartY    float64

	cellFontSize float64
}

const (
	tableCellSize   = 8.5
	tableCellPad    = 2.0
	tableBaselineUp = 2.8 // baseline offset up from a row's bottom edge
)

// Table draws a paginated table and returns every page it created plus the
// vertical position after the last row. If StartPage is set, that page is
// not included in the returned slice (the caller already owns it). When the
// next row would cross reportkit.ContentBottom the current page is closed
// and a new page opens with the title and a freshly drawn header band.
func Table(cols []Column, rows []Row, opt TableOptions) ([]*reportkit.Page, float64) {
	var created []*reportkit.Page

	page := opt.StartPage
	y := opt.StartY
	if page == nil {
		page = reportkit.NewPage()
		created = append(created, page)
		y = reportkit.ContentTop
	}

	title := opt.Title
	if title != "" {
		y = SectionTitle(page, y, title)
	}

	if len(rows) == 0 {
		y = Placeholder(page, y)
		return created, y
	}

	y = headerBand(page, y, cols)

	for i, row := range rows {
		if y+RowHeight > reportkit.ContentBottom {
			page = reportkit.NewPage()
			created = append(created, page)
			y = reportkit.ContentTop
			if title != "" {
				y = SectionTitle(page, y, title+continuedSuffix)
			}
			y = headerBand(page, y, cols)
		}
		drawRow(page, y, cols, row, i)
		y += RowHeight
	}
	return created, y
}

func headerBand(p *reportkit.Page, y float64, cols []Column) float64 {
	fill := reportkit.Palette.Primary
	width := 0.0
	for _, c := range cols {
		width += c.Width
	}
	p.Add(reportkit.Rect{
		X: reportkit.ContentLeft, Y: y, W: width, H: HeaderBandHeight, Fill: &fill,
	})
	x := reportkit.ContentLeft
	for _, c := range cols {
		drawCellText(p, x, y+HeaderBandHeight-tableBaselineUp, c,
			c.Header, reportkit.Font("B", tableCellSize), reportkit.White)
		x += c.Width
	}
	return y + HeaderBandHeight
}

func drawRow(p *reportkit.Page, y float64, cols []Column, row Row, idx int) {
	width := 0.0
	for _, c := range cols {
		width += c.Width
	}

	band := row.Highlight
	if band == nil && idx%2 == 1 {
		light := reportkit.Palette.Light
		band = &light
	}
	if band != nil {
		p.Add(reportkit.Rect{X: reportkit.ContentLeft, Y: y, W: width, H: RowHeight, Fill: band})
	}
	border := reportkit.Palette.Border
	p.Add(reportkit.Line{
		X1: reportkit.ContentLeft, Y1: y + RowHeight,
		X2: reportkit.ContentLeft + width, Y2: y + RowHeight,
		Color: border, Width: 0.15,
	})

	font := reportkit.Font("", tableCellSize)
	if row.Bold {
		font.Style = "B"
	}

	x := reportkit.ContentLeft
	for _, c := range cols {
		color := reportkit.Palette.Dark
		if override, ok := row.CellColors[c.Key]; ok {
			color = override
		}
		drawCellText(p, x, y+RowHeight-tableBaselineUp, c, row.Cells[c.Key], font, color)
		x += c.Width
	}
}

func drawCellText(p *reportkit.Page, x, baseline float64, col Column, s string, font reportkit.FontSpec, color reportkit.RGBColor) {
	if s == "" {
		return
	}
	s = reportkit.TruncateText(s, col.Width-2*tableCellPad, font.Size)

	var anchor reportkit.Anchor
	tx := x + tableCellPad
	switch col.Align {
	case AlignCenter:
		anchor = reportkit.AnchorMiddle
		tx = x + col.Width/2
	case AlignRight:
		anchor = reportkit.AnchorEnd
		tx = x + col.Width - tableCellPad
	}
	p.Add(reportkit.Text{X: tx, Y: baseline, S: s, Font: font, Color: color, Anchor: anchor})
}
