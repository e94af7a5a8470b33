package reportkit

// Primitive is a single drawable element on a page. The set of primitives
// is closed: the rasterizer type-switches over it and fails hard on
// anything it does not recognize.
type Primitive interface {
	primitive()
}

// Rect is a filled and/or stroked rectangle. A nil Fill or Stroke disables
// that aspect. Radius > 0 rounds all four corners.
type Rect struct {
	X, Y, W, H  float64
	Fill        *RGBColor
	Stroke      *RGBColor
	StrokeWidth float64
	Radius      float64
}

func (Rect) primitive() {}

// Line is a straight stroked line.
type Line struct {
	X1, Y1, X2, Y2 float64
	Color          RGBColor
	Width          float64
}

func (Line) primitive() {}

// Text is a single-line text run. Y is the baseline.
type Text struct {
	X, Y   float64
	S      string
	Font   FontSpec
	Color  RGBColor
	Anchor Anchor
}

func (Text) primitive() {}

// PathOpKind enumerates path construction operations.
type PathOpKind int

const (
	PathMoveTo PathOpKind = iota
	PathLineTo
	PathClose
)

// PathOp is one step of a path outline. Curved shapes (donut wedges, gauge
// arcs) are flattened into short line segments by the chart package.
type PathOp struct {
	Kind PathOpKind
	X, Y float64 // unused for PathClose
}

// Path is a filled and/or stroked outline built from PathOps.
type Path struct {
	Ops         []PathOp
	Fill        *RGBColor
	Stroke      *RGBColor
	StrokeWidth float64
}

func (Path) primitive() {}

// Image places encoded raster image bytes on the page. PNG is the native
// format; the rasterizer converts other formats it can decode before
// registration. Name must be unique per distinct image within a document;
// image data is registered once per name.
type Image struct {
	X, Y, W, H float64
	Name       string
	PNG        []byte
}

func (Image) primitive() {}

// Page is an ordered container of primitives with the fixed physical page
// size. Pages are built by document builders and later mutated only by the
// header/footer stamping pass, which appends decoration primitives.
type Page struct {
	prims []Primitive
}

// NewPage returns an empty page.
func NewPage() *Page {
	return &Page{}
}

// Add appends primitives in draw order.
func (p *Page) Add(prims ...Primitive) {
	p.prims = append(p.prims, prims...)
}

// Primitives returns the page's primitives in draw order.
func (p *Page) Primitives() []Primitive {
	return p.prims
}

// Size returns the physical page size in millimetres.
func (p *Page) Size() (w, h float64) {
	return PageWidth, PageHeight
}

// Document is an ordered sequence of pages: exactly one cover page followed
// by zero or more content pages. Produced once per builder invocation and
// consumed once by the rasterizer.
type Document struct {
	Title    string
	Project  string
	Filename string // suggested output filename
	Pages    []*Page
}

// Append adds pages to the end of the document.
func (d *Document) Append(pages ...*Page) {
	d.Pages = append(d.Pages, pages...)
}

// InsertAfterCover splices a page in at index 1, immediately after the
// cover. Used for table-of-contents pages whose entries are only known
// after all content has been laid out.
func (d *Document) InsertAfterCover(p *Page) {
	if len(d.Pages) == 0 {
		d.Pages = []*Page{p}
		return
	}
	d.Pages = append(d.Pages, nil)
	copy(d.Pages[2:], d.Pages[1:])
	d.Pages[1] = p
}
