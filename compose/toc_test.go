package compose

import (
	"strings"
	"testing"

	"github.com/wattmatt/reportkit"
)

func TestTOCEntries(t *testing.T) {
	entries := []TOCEntry{
		{Label: "Executive Summary", Page: 3},
		{Label: "Category Detail", Page: 4},
		{Label: "Lighting and Small Power", Page: 4, Indent: true},
		{Label: "Variations", Page: 7},
	}
	p := TOC("Contents", entries)

	for _, e := range entries {
		if !pageHasText(p, e.Label) {
			t.Errorf("missing ToC label %q", e.Label)
		}
	}

	var leaders, indented int
	for _, prim := range p.Primitives() {
		txt, ok := prim.(reportkit.Text)
		if !ok {
			continue
		}
		if strings.Count(txt.S, ".") == len(txt.S) && len(txt.S) > 3 {
			leaders++
		}
		if txt.S == "Lighting and Small Power" && txt.X > reportkit.ContentLeft {
			indented++
		}
	}
	if leaders != len(entries) {
		t.Errorf("expected %d dot leaders, got %d", len(entries), leaders)
	}
	if indented != 1 {
		t.Error("indent flag should shift the label right")
	}
}

func TestTOCPageNumbersRightAligned(t *testing.T) {
	p := TOC("Contents", []TOCEntry{{Label: "Summary", Page: 3}})
	found := false
	for _, prim := range p.Primitives() {
		txt, ok := prim.(reportkit.Text)
		if ok && txt.S == "3" && txt.Anchor == reportkit.AnchorEnd && txt.X == reportkit.ContentRight {
			found = true
		}
	}
	if !found {
		t.Error("page number should be right-aligned at the content edge")
	}
}

func TestStatCardsChaining(t *testing.T) {
	p := reportkit.NewPage()
	cards := []StatCard{
		{Label: "Budget", Value: "R 1,2m", Color: reportkit.Palette.Primary},
		{Label: "Anticipated", Value: "R 1,3m", Color: reportkit.Palette.Danger},
		{Label: "Variance", Value: "-R 0,1m", Color: reportkit.Palette.Danger},
	}
	y := StatCards(p, 50, cards)
	if y <= 50 {
		t.Errorf("next position %v should be below the cards", y)
	}
	for _, c := range cards {
		if !pageHasText(p, c.Value) {
			t.Errorf("missing card value %q", c.Value)
		}
	}
	if got := StatCards(p, 50, nil); got != 50 {
		t.Errorf("no cards should not advance the position, got %v", got)
	}
}
