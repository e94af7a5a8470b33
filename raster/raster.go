// Package raster replays a document's page primitives onto a PDF canvas.
// It is the only package that touches the PDF backend: builders and layout
// helpers deal exclusively in primitives, so swapping the backend means
// changing this package alone.
//
// Rendering is atomic. A malformed primitive anywhere in the document
// fails the whole render with an error; no partial PDF is ever returned.
package raster

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
	"go.uber.org/zap"

	"github.com/wattmatt/reportkit"
)

// Render rasterizes the document to PDF bytes.
func Render(doc *reportkit.Document, opts ...Option) ([]byte, error) {
	cfg := newRenderConfig(opts...)
	if doc == nil || len(doc.Pages) == 0 {
		return nil, newRenderError("render", -1, ErrEmptyDocument)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator(cfg.creator, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	r := &renderer{pdf: pdf, tr: tr}
	for i, page := range doc.Pages {
		w, h := page.Size()
		pdf.AddPageFormat("P", gofpdf.SizeType{Wd: w, Ht: h})
		for _, prim := range page.Primitives() {
			if err := r.draw(prim, i); err != nil {
				return nil, err
			}
		}
		cfg.logger.Debug("rendered page",
			zap.Int("page", i),
			zap.Int("primitives", len(page.Primitives())))
	}

	for _, path := range cfg.appendixPaths {
		if err := appendPDF(pdf, path); err != nil {
			return nil, err
		}
		cfg.logger.Debug("merged appendix", zap.String("path", path))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, newRenderError("output", -1, err)
	}
	cfg.logger.Info("rendered document",
		zap.String("title", doc.Title),
		zap.Int("pages", len(doc.Pages)),
		zap.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}

// RenderToFile rasterizes the document and writes the PDF to path.
func RenderToFile(doc *reportkit.Document, path string, opts ...Option) error {
	data, err := Render(doc, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return newRenderError("write", -1, err)
	}
	return nil
}

// renderer holds per-render PDF state. registered tracks image names whose
// data has already been handed to the backend; later placements reference
// the name only.
type renderer struct {
	pdf        *gofpdf.Fpdf
	tr         func(string) string
	registered map[string]bool
}

func (r *renderer) draw(prim reportkit.Primitive, page int) error {
	switch p := prim.(type) {
	case reportkit.Rect:
		return r.rect(p, page)
	case reportkit.Line:
		return r.line(p, page)
	case reportkit.Text:
		return r.text(p, page)
	case reportkit.Path:
		return r.path(p, page)
	case reportkit.Image:
		return r.image(p, page)
	default:
		return newRenderError("draw", page, fmt.Errorf("%w: %T", ErrUnknownPrimitive, prim))
	}
}

func (r *renderer) rect(p reportkit.Rect, page int) error {
	if !finite(p.X, p.Y, p.W, p.H, p.Radius) {
		return newRenderError("rect", page, ErrBadCoordinate)
	}
	style := fillStyle(p.Fill, p.Stroke)
	if style == "" {
		return nil
	}
	if p.Fill != nil {
		r.pdf.SetFillColor(p.Fill.R, p.Fill.G, p.Fill.B)
	}
	if p.Stroke != nil {
		r.pdf.SetDrawColor(p.Stroke.R, p.Stroke.G, p.Stroke.B)
		r.pdf.SetLineWidth(strokeWidth(p.StrokeWidth))
	}
	if p.Radius > 0 {
		r.pdf.RoundedRect(p.X, p.Y, p.W, p.H, p.Radius, "1234", style)
	} else {
		r.pdf.Rect(p.X, p.Y, p.W, p.H, style)
	}
	return nil
}

func (r *renderer) line(p reportkit.Line, page int) error {
	if !finite(p.X1, p.Y1, p.X2, p.Y2) {
		return newRenderError("line", page, ErrBadCoordinate)
	}
	r.pdf.SetDrawColor(p.Color.R, p.Color.G, p.Color.B)
	r.pdf.SetLineWidth(strokeWidth(p.Width))
	r.pdf.Line(p.X1, p.Y1, p.X2, p.Y2)
	return nil
}

func (r *renderer) text(p reportkit.Text, page int) error {
	if !finite(p.X, p.Y) {
		return newRenderError("text", page, ErrBadCoordinate)
	}
	r.pdf.SetFont(p.Font.Family, p.Font.Style, p.Font.Size)
	r.pdf.SetTextColor(p.Color.R, p.Color.G, p.Color.B)

	s := r.tr(p.S)
	x := p.X
	// Anchors resolve against the backend's exact metrics, not the layout
	// estimate, so anchored text lands precisely.
	switch p.Anchor {
	case reportkit.AnchorMiddle:
		x -= r.pdf.GetStringWidth(s) / 2
	case reportkit.AnchorEnd:
		x -= r.pdf.GetStringWidth(s)
	}
	r.pdf.Text(x, p.Y, s)
	return nil
}

func (r *renderer) path(p reportkit.Path, page int) error {
	style := fillStyle(p.Fill, p.Stroke)
	if style == "" || len(p.Ops) == 0 {
		return nil
	}
	if p.Fill != nil {
		r.pdf.SetFillColor(p.Fill.R, p.Fill.G, p.Fill.B)
	}
	if p.Stroke != nil {
		r.pdf.SetDrawColor(p.Stroke.R, p.Stroke.G, p.Stroke.B)
		r.pdf.SetLineWidth(strokeWidth(p.StrokeWidth))
	}
	for _, op := range p.Ops {
		switch op.Kind {
		case reportkit.PathMoveTo:
			if !finite(op.X, op.Y) {
				return newRenderError("path", page, ErrBadCoordinate)
			}
			r.pdf.MoveTo(op.X, op.Y)
		case reportkit.PathLineTo:
			if !finite(op.X, op.Y) {
				return newRenderError("path", page, ErrBadCoordinate)
			}
			r.pdf.LineTo(op.X, op.Y)
		case reportkit.PathClose:
			r.pdf.ClosePath()
		default:
			return newRenderError("path", page, fmt.Errorf("%w: path op %d", ErrUnknownPrimitive, op.Kind))
		}
	}
	r.pdf.DrawPath(style)
	return nil
}

func (r *renderer) image(p reportkit.Image, page int) error {
	if !finite(p.X, p.Y, p.W, p.H) {
		return newRenderError("image", page, ErrBadCoordinate)
	}
	if p.Name == "" || len(p.PNG) == 0 {
		return newRenderError("image", page, ErrBadImage)
	}
	if r.registered == nil {
		r.registered = make(map[string]bool)
	}
	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	if !r.registered[p.Name] {
		data, err := normalizeImage(p.PNG)
		if err != nil {
			return newRenderError("image", page, err)
		}
		r.pdf.RegisterImageOptionsReader(p.Name, opt, bytes.NewReader(data))
		if err := r.pdf.Error(); err != nil {
			return newRenderError("image", page, err)
		}
		r.registered[p.Name] = true
	}
	r.pdf.ImageOptions(p.Name, p.X, p.Y, p.W, p.H, false, opt, 0, "")
	return nil
}

// appendPDF imports every page of an existing PDF and replays each onto a
// new page at its original size.
func appendPDF(pdf *gofpdf.Fpdf, path string) error {
	if _, err := os.Stat(path); err != nil {
		return newRenderError("appendix", -1, err)
	}
	// Importing page 1 parses the file; page sizes for the whole file are
	// available afterwards.
	first := gofpdi.ImportPage(pdf, path, 1, "/MediaBox")
	sizes := gofpdi.GetPageSizes()
	n := len(sizes)
	if n == 0 {
		return newRenderError("appendix", -1, fmt.Errorf("no pages in %s", path))
	}
	for i := 1; i <= n; i++ {
		tpl := first
		if i > 1 {
			tpl = gofpdi.ImportPage(pdf, path, i, "/MediaBox")
		}
		box := sizes[i]["/MediaBox"]
		w, h := box["w"], box["h"]
		if w <= 0 || h <= 0 {
			w, h = reportkit.PageWidth, reportkit.PageHeight
		}
		pdf.AddPageFormat("P", gofpdf.SizeType{Wd: w, Ht: h})
		gofpdi.UseImportedTemplate(pdf, tpl, 0, 0, w, h)
	}
	if err := pdf.Error(); err != nil {
		return newRenderError("appendix", -1, err)
	}
	return nil
}

// fillStyle maps fill/stroke presence to a gofpdf draw style string; empty
// means there is nothing to draw.
func fillStyle(fill, stroke *reportkit.RGBColor) string {
	switch {
	case fill != nil && stroke != nil:
		return "FD"
	case fill != nil:
		return "F"
	case stroke != nil:
		return "D"
	default:
		return ""
	}
}

func strokeWidth(w float64) float64 {
	if w <= 0 {
		return 0.2
	}
	return w
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
