package compose

import "github.com/wattmatt/reportkit"

// CoverData is the structured input for a cover page.
type CoverData struct {
	LogoPNG       []byte // optional, pre-encoded PNG
	Title         string
	Subtitle      string
	ProjectName   string
	ProjectNumber string
	PreparedFor   []string // one line per slice element
	PreparedBy    []string
	Date          string
	Revision      string
}

// Cover builds the document's first page. It is the only page type exempt
// from the running header/footer stamping pass.
func Cover(d CoverData) *reportkit.Page {
	p := reportkit.NewPage()

	primary := reportkit.Palette.Primary
	accent := reportkit.Palette.Accent

	// Brand banner with an accent keyline beneath it.
	p.Add(reportkit.Rect{X: 0, Y: 0, W: reportkit.PageWidth, H: 95, Fill: &primary})
	p.Add(reportkit.Rect{X: 0, Y: 95, W: reportkit.PageWidth, H: 3, Fill: &accent})

	if d.LogoPNG != nil {
		p.Add(reportkit.Image{
			X: reportkit.ContentLeft, Y: 14, W: 34, H: 0,
			Name: "cover-logo", PNG: d.LogoPNG,
		})
	}

	p.Add(reportkit.Text{
		X: reportkit.ContentLeft, Y: 62, S: d.Title,
		Font:  reportkit.Font("B", 26),
		Color: reportkit.White,
	})
	if d.Subtitle != "" {
		p.Add(reportkit.Text{
			X: reportkit.ContentLeft, Y: 74, S: d.Subtitle,
			Font:  reportkit.Font("", 13),
			Color: reportkit.White,
		})
	}

	y := 118.0
	if d.ProjectName != "" {
		p.Add(reportkit.Text{
			X: reportkit.ContentLeft, Y: y, S: d.ProjectName,
			Font:  reportkit.Font("B", 16),
			Color: reportkit.Palette.Dark,
		})
		y += 8
	}
	if d.ProjectNumber != "" {
		p.Add(reportkit.Text{
			X: reportkit.ContentLeft, Y: y, S: "Project No. " + d.ProjectNumber,
			Font:  reportkit.Font("", 11),
			Color: reportkit.Palette.Muted,
		})
		y += 8
	}

	// Two-column prepared for / prepared by block.
	y = 170
	colW := reportkit.ContentWidth / 2
	drawPartyBlock(p, reportkit.ContentLeft, y, colW-6, "PREPARED FOR", d.PreparedFor)
	drawPartyBlock(p, reportkit.ContentLeft+colW, y, colW-6, "PREPARED BY", d.PreparedBy)

	// Date / revision footer.
	fy := reportkit.PageHeight - 24
	p.Add(reportkit.Rect{X: 0, Y: fy - 8, W: reportkit.PageWidth, H: 0.8, Fill: &accent})
	if d.Date != "" {
		p.Add(reportkit.Text{
			X: reportkit.ContentLeft, Y: fy, S: d.Date,
			Font:  reportkit.Font("", 10),
			Color: reportkit.Palette.Muted,
		})
	}
	if d.Revision != "" {
		p.Add(reportkit.Text{
			X: reportkit.ContentRight, Y: fy, S: "Revision " + d.Revision,
			Font:   reportkit.Font("", 10),
			Color:  reportkit.Palette.Muted,
			Anchor: reportkit.AnchorEnd,
		})
	}
	return p
}

func drawPartyBlock(p *reportkit.Page, x, y, w float64, heading string, lines []string) {
	p.Add(reportkit.Text{
		X: x, Y: y, S: heading,
		Font:  reportkit.Font("B", 9),
		Color: reportkit.Palette.Accent,
	})
	y += 6
	for _, line := range lines {
		p.Add(reportkit.Text{
			X: x, Y: y,
			S:     reportkit.TruncateText(line, w, 10),
			Font:  reportkit.Font("", 10),
			Color: reportkit.Palette.Dark,
		})
		y += 5.5
	}
}
