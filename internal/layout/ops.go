package layout

import "github.com/alnah/go-corridorpdf/internal/style"

// Block indices for content not produced by a block.
const (
	SourceHeader = -1
	SourceFooter = -2
)

// Role tags what part of the document an op draws.
type Role string

const (
	RoleHeader  Role = "header"
	RoleFooter  Role = "footer"
	RoleHeading Role = "heading"
	RoleBody    Role = "body"
	RoleBullet  Role = "bullet"
	RoleTable   Role = "table"
	RoleBadge   Role = "badge"
	RoleStats   Role = "stats"
	RoleCode    Role = "code"
	RoleRule    Role = "rule"
)

// Op is one primitive draw instruction.
type Op interface {
	// Source returns the index of the block that produced the op, or one
	// of SourceHeader and SourceFooter.
	Source() int
	// Kind returns the role of the op in the document.
	Kind() Role
}

// Origin identifies the producer of an op.
type Origin struct {
	Block int
	Role  Role
}

func (o Origin) Source() int { return o.Block }
func (o Origin) Kind() Role  { return o.Role }

// TextOp places one run of text. Y is the baseline.
type TextOp struct {
	Origin
	X, Y  float64
	Text  string
	Font  style.Font
	Color style.Color
}

// RectOp draws a rectangle. Y is the top edge.
type RectOp struct {
	Origin
	X, Y, W, H float64
	Fill       style.Color
	Stroke     style.Color
	Filled     bool
	Stroked    bool
	LineWidth  float64
}

// LineOp draws a straight line.
type LineOp struct {
	Origin
	X1, Y1, X2, Y2 float64
	Color          style.Color
	Width          float64
}

// TableRow is one laid out table row. Cells hold the wrapped lines of each
// column.
type TableRow struct {
	Index  int // body row index in the source table, -1 for the header
	Cells  [][]string
	Height float64
	Fill   style.Color
}

// TableOp draws one page-local slice of a table, header first.
type TableOp struct {
	Origin
	X, Y       float64
	Widths     []float64
	Header     TableRow
	Rows       []TableRow
	Continued  bool // the slice continues a table started on an earlier page
	HeaderText style.Color
	BodyText   style.Color
	Border     style.Color
	HeaderFont style.Font
	BodyFont   style.Font
	Padding    float64
	LineHeight float64
}

// Width returns the total table width.
func (t TableOp) Width() float64 {
	var w float64
	for _, c := range t.Widths {
		w += c
	}
	return w
}

// Height returns the height of the header plus every row in the slice.
func (t TableOp) Height() float64 {
	h := t.Header.Height
	for _, r := range t.Rows {
		h += r.Height
	}
	return h
}

// Cell is the resolved geometry of one table cell.
type Cell struct {
	X, Y, W, H float64
	Lines      []string
	Fill       style.Color
	Font       style.Font
	Color      style.Color
	Header     bool
}

// Cells resolves the slice into drawable cells, header row first. Backends
// share it so the PDF and HTML outputs agree on geometry.
func (t TableOp) Cells() []Cell {
	cells := make([]Cell, 0, len(t.Widths)*(len(t.Rows)+1))
	y := t.Y
	emit := func(r TableRow, header bool) {
		x := t.X
		font, color := t.BodyFont, t.BodyText
		if header {
			font, color = t.HeaderFont, t.HeaderText
		}
		for i, w := range t.Widths {
			var lines []string
			if i < len(r.Cells) {
				lines = r.Cells[i]
			}
			cells = append(cells, Cell{
				X: x, Y: y, W: w, H: r.Height,
				Lines: lines, Fill: r.Fill, Font: font, Color: color, Header: header,
			})
			x += w
		}
		y += r.Height
	}
	emit(t.Header, true)
	for _, r := range t.Rows {
		emit(r, false)
	}
	return cells
}

// Baseline returns the baseline of the first text line in a box whose top
// edge is top, set in f with the given line height.
func Baseline(top float64, f style.Font, lineHeight float64) float64 {
	return top + (lineHeight-f.Size)/2 + f.Size*ascent
}

// ascent approximates the core fonts' ascender as a fraction of the size.
const ascent = 0.8

// Compile-time interface checks.
var (
	_ Op = TextOp{}
	_ Op = RectOp{}
	_ Op = LineOp{}
	_ Op = TableOp{}
)
