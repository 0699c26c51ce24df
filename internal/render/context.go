package render

import (
	"github.com/alnah/go-corridorpdf/internal/layout"
	"github.com/alnah/go-corridorpdf/internal/style"
)

// Context is the state of one document generation: the read-only style
// registry, the cursor, and the pages produced so far. A Context is owned
// by a single generation and is never shared.
type Context struct {
	reg     *style.Registry
	metrics layout.Metrics
	cursor  layout.Cursor
	width   float64
	pages   []layout.Page
	block   int
	flow    flow
}

// flow tracks the current row of badges and stats cards.
type flow struct {
	active bool
	x      float64
	top    float64
	height float64
}

// NewContext creates a context for a page of the given size with its first
// page open.
func NewContext(reg *style.Registry, m layout.Metrics, width, height, margin float64) *Context {
	return &Context{
		reg:     reg,
		metrics: m,
		cursor:  layout.NewCursor(height, margin),
		width:   width,
		pages:   []layout.Page{{Number: 1}},
		block:   layout.SourceHeader,
	}
}

// Cursor returns a copy of the current cursor.
func (c *Context) Cursor() layout.Cursor { return c.cursor }

// Pages returns the pages produced so far.
func (c *Context) Pages() []layout.Page { return c.pages }

func (c *Context) left() float64         { return c.cursor.Margin }
func (c *Context) right() float64        { return c.width - c.cursor.Margin }
func (c *Context) contentWidth() float64 { return c.right() - c.left() }

// emit appends an op to the current page, tagged with the active block.
func (c *Context) emit(op layout.Op) {
	p := &c.pages[len(c.pages)-1]
	p.Ops = append(p.Ops, op)
}

func (c *Context) origin(role layout.Role) layout.Origin {
	return layout.Origin{Block: c.block, Role: role}
}

// breakPage starts a new page.
func (c *Context) breakPage() {
	c.cursor.Break()
	c.openPage()
}

// ensure breaks the page when h does not fit below the cursor.
func (c *Context) ensure(h float64) bool {
	if c.cursor.Ensure(h) {
		c.openPage()
		return true
	}
	return false
}

func (c *Context) openPage() {
	c.pages = append(c.pages, layout.Page{Number: c.cursor.Page + 1})
	c.flow = flow{}
}

func (c *Context) measure(s string, f style.Font) float64 {
	return c.metrics.StringWidth(s, f)
}

// fitText shortens s with an ellipsis until it fits in w.
func (c *Context) fitText(s string, f style.Font, w float64) string {
	if c.measure(s, f) <= w {
		return s
	}
	r := []rune(s)
	for len(r) > 0 {
		r = r[:len(r)-1]
		t := string(r) + ellipsis
		if c.measure(t, f) <= w {
			return t
		}
	}
	return ""
}
