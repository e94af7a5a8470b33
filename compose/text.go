package compose

import (
	"strings"

	"github.com/russross/blackfriday/v2"
	"github.com/wattmatt/reportkit"
)

// TextOptions configures a paginated text flow.
type TextOptions struct {
	Title    string
	FontSize float64 // default 10pt
	LineGap  float64 // default 5.5mm baseline to baseline

	// StartPage/StartY as in TableOptions.
	StartPage *reportkit.Page
	StartY    float64
}

func (o *TextOptions) defaults() {
	if o.FontSize <= 0 {
		o.FontSize = 10
	}
	if o.LineGap <= 0 {
		o.LineGap = 5.5
	}
}

// styledLine is one laid-out line of a text flow.
type styledLine struct {
	s           string
	font        reportkit.FontSpec
	indent      float64
	spaceBefore float64
}

// TextFlow lays out word-wrapped paragraphs under the same overflow policy
// as Table: a line is never split across pages and the title is repeated on
// continuation pages. Returns the pages it created and the final vertical
// position.
func TextFlow(paragraphs []string, opt TextOptions) ([]*reportkit.Page, float64) {
	opt.defaults()
	var lines []styledLine
	font := reportkit.Font("", opt.FontSize)
	for _, para := range paragraphs {
		wrapped := reportkit.WrapText(para, reportkit.ContentWidth, opt.FontSize)
		for i, s := range wrapped {
			l := styledLine{s: s, font: font}
			if i == 0 {
				l.spaceBefore = 2.5
			}
			lines = append(lines, l)
		}
	}
	return flowLines(lines, opt)
}

// MarkdownFlow parses markdown commentary and flattens headings, paragraphs
// and lists into styled wrapped lines before paginating them. Formatting
// beyond heading weight, list bullets and code spans is discarded.
func MarkdownFlow(md []byte, opt TextOptions) ([]*reportkit.Page, float64) {
	opt.defaults()
	parser := blackfriday.New(blackfriday.WithExtensions(blackfriday.CommonExtensions))
	doc := parser.Parse(md)

	var lines []styledLine
	for node := doc.FirstChild; node != nil; node = node.Next {
		lines = append(lines, markdownBlock(node, opt)...)
	}
	return flowLines(lines, opt)
}

func markdownBlock(node *blackfriday.Node, opt TextOptions) []styledLine {
	var lines []styledLine
	switch node.Type {
	case blackfriday.Heading:
		size := opt.FontSize + 3
		if node.HeadingData.Level >= 2 {
			size = opt.FontSize + 1.5
		}
		for i, s := range reportkit.WrapText(nodeText(node), reportkit.ContentWidth, size) {
			l := styledLine{s: s, font: reportkit.Font("B", size)}
			if i == 0 {
				l.spaceBefore = 4
			}
			lines = append(lines, l)
		}
	case blackfriday.Paragraph:
		for i, s := range reportkit.WrapText(nodeText(node), reportkit.ContentWidth, opt.FontSize) {
			l := styledLine{s: s, font: reportkit.Font("", opt.FontSize)}
			if i == 0 {
				l.spaceBefore = 2.5
			}
			lines = append(lines, l)
		}
	case blackfriday.List:
		for item := node.FirstChild; item != nil; item = item.Next {
			const indent = 5.0
			wrapped := reportkit.WrapText(nodeText(item), reportkit.ContentWidth-indent, opt.FontSize)
			for i, s := range wrapped {
				if i == 0 {
					s = "• " + s
				}
				lines = append(lines, styledLine{
					s:      s,
					font:   reportkit.Font("", opt.FontSize),
					indent: indent,
				})
			}
		}
	case blackfriday.CodeBlock:
		for _, s := range strings.Split(strings.TrimRight(string(node.Literal), "\n"), "\n") {
			lines = append(lines, styledLine{
				s:      s,
				font:   reportkit.FontSpec{Family: "Courier", Size: opt.FontSize - 1},
				indent: 3,
			})
		}
	}
	return lines
}

// nodeText concatenates the literal text beneath a block node.
func nodeText(n *blackfriday.Node) string {
	var sb strings.Builder
	n.Walk(func(c *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if entering && (c.Type == blackfriday.Text || c.Type == blackfriday.Code) {
			sb.Write(c.Literal)
		}
		return blackfriday.GoToNext
	})
	return strings.Join(strings.Fields(sb.String()), " ")
}

func flowLines(lines []styledLine, opt TextOptions) ([]*reportkit.Page, float64) {
	var created []*reportkit.Page
	page := opt.StartPage
	y := opt.StartY
	if page == nil {
		page = reportkit.NewPage()
		created = append(created, page)
		y = reportkit.ContentTop
	}
	if opt.Title != "" {
		y = SectionTitle(page, y, opt.Title)
	}
	if len(lines) == 0 {
		y = Placeholder(page, y)
		return created, y
	}

	for _, line := range lines {
		need := line.spaceBefore + opt.LineGap
		if y+need > reportkit.ContentBottom {
			page = reportkit.NewPage()
			created = append(created, page)
			y = reportkit.ContentTop
			if opt.Title != "" {
				y = SectionTitle(page, y, opt.Title+continuedSuffix)
			}
			need = opt.LineGap
		}
		y += need
		page.Add(reportkit.Text{
			X: reportkit.ContentLeft + line.indent, Y: y,
			S:     line.s,
			Font:  line.font,
			Color: reportkit.Palette.Dark,
		})
	}
	return created, y
}
