package main

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/wattmatt/reportkit"
)

const cableJSON = `{
	"project": {"name": "Northgate", "number": "P-1900"},
	"cables": [
		{"tag": "C-01", "from": "Main DB", "to": "DB-1A", "size": "4C x 70mm", "length_m": 85, "voltage_drop_pct": 2.1}
	]
}`

func testLogo(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestBuilderForPlacesLogoOnCover(t *testing.T) {
	builder, err := builderFor("cable-schedule", []byte(cableJSON), testLogo(t))
	if err != nil {
		t.Fatalf("builderFor: %v", err)
	}
	doc, err := builder.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	found := false
	for _, prim := range doc.Pages[0].Primitives() {
		if img, ok := prim.(reportkit.Image); ok && len(img.PNG) > 0 {
			found = true
		}
	}
	if !found {
		t.Error("cover page missing the logo image")
	}
}

func TestBuilderForRejectsUnknownType(t *testing.T) {
	if _, err := builderFor("site-diary", []byte(`{}`), nil); err == nil {
		t.Fatal("unknown document type should fail")
	}
}

func TestBuilderForRejectsUnknownFields(t *testing.T) {
	if _, err := builderFor("cable-schedule", []byte(`{"cabels": []}`), nil); err == nil {
		t.Fatal("misspelled field should fail decoding")
	}
}
