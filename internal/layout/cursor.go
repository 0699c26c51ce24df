package layout

// epsilon absorbs floating point noise when comparing positions.
const epsilon = 1e-6

// Cursor tracks the write position on the current page.
//
// Y never exceeds Limit() after a render step. A step that would cross the
// limit calls Break first and is then retried on the fresh page.
type Cursor struct {
	Page       int     // zero-based page index
	Y          float64 // current write position
	PageHeight float64
	Margin     float64
}

// NewCursor returns a cursor at the top margin of the first page.
func NewCursor(pageHeight, margin float64) Cursor {
	return Cursor{Y: margin, PageHeight: pageHeight, Margin: margin}
}

// Top is the Y position at which content starts on a fresh page.
func (c Cursor) Top() float64 { return c.Margin }

// Limit is the lowest Y position content may reach.
func (c Cursor) Limit() float64 { return c.PageHeight - c.Margin }

// ContentHeight is the usable height of a fresh page.
func (c Cursor) ContentHeight() float64 { return c.Limit() - c.Top() }

// Remaining is the vertical space left on the current page.
func (c Cursor) Remaining() float64 {
	if r := c.Limit() - c.Y; r > 0 {
		return r
	}
	return 0
}

// Fits reports whether h points of content fit below the cursor.
func (c Cursor) Fits(h float64) bool {
	return c.Y+h <= c.Limit()+epsilon
}

// AtTop reports whether nothing has been written on the current page since
// the last break.
func (c Cursor) AtTop() bool {
	return c.Y <= c.Top()+epsilon
}

// Advance moves the cursor down by h, clamped to Limit.
func (c *Cursor) Advance(h float64) {
	c.Y += h
	if c.Y > c.Limit() {
		c.Y = c.Limit()
	}
}

// Break moves the cursor to the top of the next page.
func (c *Cursor) Break() {
	c.Page++
	c.Y = c.Top()
}

// Ensure breaks the page when h does not fit and the cursor is not already
// at the top of a page. It reports whether a break happened. Content taller
// than a full page is written at the top of a fresh page and clipped by the
// Advance clamp.
func (c *Cursor) Ensure(h float64) bool {
	if c.Fits(h) || c.AtTop() {
		return false
	}
	c.Break()
	return true
}
