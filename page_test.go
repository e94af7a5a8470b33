package reportkit

import "testing"

func TestPageAddOrder(t *testing.T) {
	p := NewPage()
	r := Rect{X: 1, Y: 2, W: 3, H: 4}
	l := Line{X1: 0, Y1: 0, X2: 10, Y2: 10}
	p.Add(r)
	p.Add(l)

	prims := p.Primitives()
	if len(prims) != 2 {
		t.Fatalf("expected 2 primitives, got %d", len(prims))
	}
	if _, ok := prims[0].(Rect); !ok {
		t.Error("first primitive should be the Rect")
	}
	if _, ok := prims[1].(Line); !ok {
		t.Error("second primitive should be the Line")
	}
}

func TestPageSizeFixed(t *testing.T) {
	w, h := NewPage().Size()
	if w != PageWidth || h != PageHeight {
		t.Errorf("page size %vx%v, want %vx%v", w, h, PageWidth, PageHeight)
	}
}

func TestInsertAfterCover(t *testing.T) {
	cover, toc, body := NewPage(), NewPage(), NewPage()
	doc := &Document{}
	doc.Append(cover, body)
	doc.InsertAfterCover(toc)

	if len(doc.Pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(doc.Pages))
	}
	if doc.Pages[0] != cover || doc.Pages[1] != toc || doc.Pages[2] != body {
		t.Error("pages out of order after splice")
	}
}

func TestInsertAfterCoverEmptyDocument(t *testing.T) {
	doc := &Document{}
	p := NewPage()
	doc.InsertAfterCover(p)
	if len(doc.Pages) != 1 || doc.Pages[0] != p {
		t.Error("splice into empty document should yield a single page")
	}
}
