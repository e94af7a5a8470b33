package compose

import (
	"fmt"
	"strings"
	"testing"

	"github.com/wattmatt/reportkit"
)

func buildTestDoc(contentPages int) *reportkit.Document {
	doc := &reportkit.Document{Title: "Monthly Cost Report", Project: "Substation 12"}
	doc.Append(Cover(CoverData{Title: "Monthly Cost Report"}))
	for i := 0; i < contentPages; i++ {
		doc.Append(reportkit.NewPage())
	}
	return doc
}

func footerTexts(p *reportkit.Page) []string {
	var out []string
	for _, prim := range p.Primitives() {
		if t, ok := prim.(reportkit.Text); ok && strings.HasPrefix(t.S, "Page ") {
			out = append(out, t.S)
		}
	}
	return out
}

func hasHeaderRule(p *reportkit.Page) bool {
	for _, prim := range p.Primitives() {
		if l, ok := prim.(reportkit.Line); ok && l.Color == reportkit.Palette.Accent && l.Y1 < 20 {
			return true
		}
	}
	return false
}

func TestStampSkipsCover(t *testing.T) {
	doc := buildTestDoc(3)
	Stamp(doc)

	if hasHeaderRule(doc.Pages[0]) {
		t.Error("cover page must not carry the header rule")
	}
	if got := footerTexts(doc.Pages[0]); len(got) != 0 {
		t.Errorf("cover page must not carry a footer, got %v", got)
	}
}

func TestStampFooterNumbering(t *testing.T) {
	doc := buildTestDoc(4)
	Stamp(doc)

	for i, p := range doc.Pages[1:] {
		want := fmt.Sprintf("Page %d of %d", i+1, 4)
		got := footerTexts(p)
		if len(got) != 1 || got[0] != want {
			t.Errorf("page %d footer = %v, want [%s]", i+2, got, want)
		}
	}
}

func TestStampHeaderArtifacts(t *testing.T) {
	doc := buildTestDoc(2)
	Stamp(doc)

	for i, p := range doc.Pages[1:] {
		if !hasHeaderRule(p) {
			t.Errorf("content page %d missing header rule", i+2)
		}
	}
}

func TestStampSinglePageDocument(t *testing.T) {
	doc := buildTestDoc(0)
	Stamp(doc) // must not panic or decorate the lone cover
	if got := footerTexts(doc.Pages[0]); len(got) != 0 {
		t.Errorf("lone cover gained a footer: %v", got)
	}
}
