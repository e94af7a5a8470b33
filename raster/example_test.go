package raster_test

import (
	"fmt"
	"log"

	"github.com/wattmatt/reportkit"
	"github.com/wattmatt/reportkit/raster"
)

// ExampleRender demonstrates rasterizing a hand-built page to PDF bytes.
func ExampleRender() {
	doc := &reportkit.Document{Title: "Site Note"}

	p := reportkit.NewPage()
	banner := reportkit.Palette.Primary
	p.Add(reportkit.Rect{X: 0, Y: 0, W: reportkit.PageWidth, H: 30, Fill: &banner})
	p.Add(reportkit.Text{
		X: reportkit.ContentLeft, Y: 19,
		S:     "Site Note",
		Font:  reportkit.Font("B", 16),
		Color: reportkit.White,
	})
	doc.Append(p)

	pdf, err := raster.Render(doc)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(pdf[:4]))
	// Output: %PDF
}
