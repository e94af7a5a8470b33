package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/wattmatt/reportkit"
)

func simpleDoc() *reportkit.Document {
	doc := &reportkit.Document{Title: "Render Test"}
	p := reportkit.NewPage()
	fill := reportkit.Palette.Primary
	p.Add(reportkit.Rect{X: 10, Y: 10, W: 50, H: 20, Fill: &fill})
	p.Add(reportkit.Line{X1: 10, Y1: 40, X2: 60, Y2: 40, Color: reportkit.Palette.Border, Width: 0.3})
	p.Add(reportkit.Text{X: 10, Y: 50, S: "hello", Font: reportkit.Font("B", 12), Color: reportkit.Palette.Dark})
	p.Add(reportkit.Path{
		Ops: []reportkit.PathOp{
			{Kind: reportkit.PathMoveTo, X: 20, Y: 60},
			{Kind: reportkit.PathLineTo, X: 40, Y: 60},
			{Kind: reportkit.PathLineTo, X: 30, Y: 75},
			{Kind: reportkit.PathClose},
		},
		Fill: &fill,
	})
	doc.Append(p)
	return doc
}

func TestRenderProducesPDF(t *testing.T) {
	data, err := Render(simpleDoc())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not start with a PDF header: %q", data[:8])
	}
	if !bytes.Contains(data, []byte("%%EOF")) {
		t.Error("output missing PDF trailer")
	}
}

func TestRenderEmptyDocument(t *testing.T) {
	_, err := Render(&reportkit.Document{Title: "empty"})
	if !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("got %v, want ErrEmptyDocument", err)
	}
	if _, err := Render(nil); !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("nil document: got %v, want ErrEmptyDocument", err)
	}
}

func TestRenderRejectsNonFiniteCoordinates(t *testing.T) {
	doc := &reportkit.Document{Title: "bad"}
	p := reportkit.NewPage()
	p.Add(reportkit.Text{X: math.NaN(), Y: 50, S: "x", Font: reportkit.Font("", 10)})
	doc.Append(p)

	data, err := Render(doc)
	if !errors.Is(err, ErrBadCoordinate) {
		t.Fatalf("got %v, want ErrBadCoordinate", err)
	}
	if data != nil {
		t.Error("failed render must not return partial output")
	}

	var rerr *RenderError
	if !errors.As(err, &rerr) {
		t.Fatal("error should carry operation context")
	}
	if rerr.Op != "text" || rerr.Page != 0 {
		t.Errorf("context = %s/%d, want text/0", rerr.Op, rerr.Page)
	}
	if !strings.Contains(rerr.Error(), "page 0") {
		t.Errorf("message %q should name the page", rerr.Error())
	}
}

func TestRenderRejectsEmptyImage(t *testing.T) {
	doc := &reportkit.Document{Title: "bad image"}
	p := reportkit.NewPage()
	p.Add(reportkit.Image{X: 10, Y: 10, W: 20, H: 20, Name: "logo"})
	doc.Append(p)
	if _, err := Render(doc); !errors.Is(err, ErrBadImage) {
		t.Fatalf("got %v, want ErrBadImage", err)
	}
}

func TestRenderImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < 4; i++ {
		img.Set(i, i, color.RGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}

	doc := &reportkit.Document{Title: "image"}
	p := reportkit.NewPage()
	p.Add(reportkit.Image{X: 10, Y: 10, W: 20, H: 20, Name: "swatch", PNG: buf.Bytes()})
	// Second placement of the same name reuses the registered data.
	p.Add(reportkit.Image{X: 40, Y: 10, W: 20, H: 20, Name: "swatch", PNG: buf.Bytes()})
	doc.Append(p)

	data, err := Render(doc)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}
}

func TestRenderConvertsNonPNGImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		img.Set(x, x, color.RGBA{B: 255, A: 255})
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatal(err)
	}

	doc := &reportkit.Document{Title: "jpeg logo"}
	p := reportkit.NewPage()
	p.Add(reportkit.Image{X: 10, Y: 10, W: 20, H: 20, Name: "logo", PNG: buf.Bytes()})
	doc.Append(p)

	data, err := Render(doc)
	if err != nil {
		t.Fatalf("JPEG image bytes should be converted, got %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}
}

func TestRenderToFile(t *testing.T) {
	path := t.TempDir() + "/out.pdf"
	if err := RenderToFile(simpleDoc(), path); err != nil {
		t.Fatalf("RenderToFile: %v", err)
	}
}

func TestWithAppendixMergesPages(t *testing.T) {
	appendix := t.TempDir() + "/appendix.pdf"
	if err := RenderToFile(simpleDoc(), appendix); err != nil {
		t.Fatalf("rendering appendix: %v", err)
	}

	base, err := Render(simpleDoc())
	if err != nil {
		t.Fatal(err)
	}
	merged, err := Render(simpleDoc(), WithAppendix(appendix))
	if err != nil {
		t.Fatalf("Render with appendix: %v", err)
	}
	if !bytes.HasPrefix(merged, []byte("%PDF")) {
		t.Fatal("merged output is not a PDF")
	}
	if len(merged) <= len(base) {
		t.Errorf("merged output (%d bytes) should exceed the base render (%d bytes)", len(merged), len(base))
	}
}

func TestWithAppendixMissingFile(t *testing.T) {
	_, err := Render(simpleDoc(), WithAppendix(t.TempDir()+"/missing.pdf"))
	if err == nil {
		t.Fatal("missing appendix should fail the render")
	}
	var rerr *RenderError
	if !errors.As(err, &rerr) || rerr.Op != "appendix" {
		t.Fatalf("got %v, want an appendix RenderError", err)
	}
}

func TestNormalizeImagePassesPNGThrough(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	out, err := NormalizeImage(buf.Bytes())
	if err != nil {
		t.Fatalf("NormalizeImage: %v", err)
	}
	if !bytes.Equal(out, buf.Bytes()) {
		t.Error("PNG input should pass through unchanged")
	}
}

func TestNormalizeImageRejectsGarbage(t *testing.T) {
	if _, err := NormalizeImage([]byte("not an image")); err == nil {
		t.Fatal("garbage input should fail")
	}
}
