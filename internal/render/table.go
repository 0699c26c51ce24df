package render

import (
	"math"
	"unicode/utf8"

	"github.com/alnah/go-corridorpdf/block"
	"github.com/alnah/go-corridorpdf/internal/layout"
	"github.com/alnah/go-corridorpdf/internal/style"
)

// columnWidths splits width across columns in proportion to the rune length
// of each header, counting at least tableMinWeight per column.
func columnWidths(headers []string, width float64) []float64 {
	weights := make([]int, len(headers))
	total := 0
	for i, h := range headers {
		w := utf8.RuneCountInString(h)
		if w < tableMinWeight {
			w = tableMinWeight
		}
		weights[i] = w
		total += w
	}
	out := make([]float64, len(headers))
	for i, w := range weights {
		out[i] = width * float64(w) / float64(total)
	}
	return out
}

// tableRows lays out the header and body rows of a normalized table. The
// header is capped at half of a fresh page so that it always leaves room
// for a body row below it.
func (c *Context) tableRows(t block.Table) (layout.TableRow, []layout.TableRow) {
	if t.IsEmpty() {
		return layout.TableRow{Index: -1}, nil
	}
	widths := columnWidths(t.Headers, c.contentWidth())
	header := c.tableRow(-1, t.Headers, widths, c.reg.TableFont(true), c.reg.Color(style.ColorPrimary))
	header = c.truncateRow(header, widths, c.reg.TableFont(true), c.cursor.ContentHeight()/2)

	rows := make([]layout.TableRow, len(t.Rows))
	for i, r := range t.Rows {
		fill := c.reg.Color(style.ColorWhite)
		if i%2 == 1 {
			fill = c.reg.Color(style.ColorLightGray)
		}
		rows[i] = c.tableRow(i, r, widths, c.reg.TableFont(false), fill)
	}
	return header, rows
}

func (c *Context) tableRow(index int, cells []string, widths []float64, f style.Font, fill style.Color) layout.TableRow {
	lh := c.tableLineHeight()
	row := layout.TableRow{Index: index, Cells: make([][]string, len(cells)), Fill: fill}
	maxLines := 1
	for i, cell := range cells {
		lines := c.wrapPlain(cell, f, widths[i]-2*tableCellPadding)
		if len(lines) > maxLines {
			maxLines = len(lines)
		}
		row.Cells[i] = lines
	}
	row.Height = float64(maxLines)*lh + 2*tableCellPadding
	return row
}

func (c *Context) tableLineHeight() float64 {
	return c.reg.LineHeight(c.reg.TableFont(false))
}

// minRowHeight is the height of a one-line row.
func (c *Context) minRowHeight() float64 {
	return c.tableLineHeight() + 2*tableCellPadding
}

// maxRowHeight is the tallest body row a fresh page can hold below the
// repeated header.
func (c *Context) maxRowHeight(header layout.TableRow) float64 {
	return c.cursor.ContentHeight() - header.Height
}

// tableLead is the height a table needs at the cursor before it starts: the
// header plus the first body row, or plus one line when that row is taller
// than a fresh page and is going to be truncated anyway.
func (c *Context) tableLead(header layout.TableRow, rows []layout.TableRow) float64 {
	if len(rows) == 0 {
		return header.Height
	}
	if rows[0].Height > c.maxRowHeight(header) {
		return header.Height + c.minRowHeight()
	}
	return header.Height + rows[0].Height
}

// truncateRow cuts the cell lines of r so that the row fits in maxHeight,
// keeping at least one line. The last kept line of a cut cell ends with an
// ellipsis.
func (c *Context) truncateRow(r layout.TableRow, widths []float64, f style.Font, maxHeight float64) layout.TableRow {
	if r.Height <= maxHeight {
		return r
	}
	lh := c.tableLineHeight()
	keep := max(1, int(math.Floor((maxHeight-2*tableCellPadding)/lh)))

	cells := make([][]string, len(r.Cells))
	for i, lines := range r.Cells {
		if len(lines) <= keep {
			cells[i] = lines
			continue
		}
		cut := append([]string(nil), lines[:keep]...)
		cut[keep-1] = c.fitText(cut[keep-1]+ellipsis, f, widths[i]-2*tableCellPadding)
		cells[i] = cut
	}
	r.Cells = cells
	r.Height = float64(keep)*lh + 2*tableCellPadding
	return r
}

// renderTable draws a table, splitting it between rows when it runs past
// the bottom of the page. Every slice starts with the header row. A row
// taller than a fresh page fills the rest of the page it starts on and is
// truncated there.
func (c *Context) renderTable(tb block.Table) {
	t := tb.Normalize()
	if t.IsEmpty() {
		return
	}
	header, rows := c.tableRows(t)
	widths := columnWidths(t.Headers, c.contentWidth())
	bodyFont := c.reg.TableFont(false)

	c.ensure(c.tableLead(header, rows))

	slice := func(continued bool) layout.TableOp {
		return layout.TableOp{
			Origin:     c.origin(layout.RoleTable),
			X:          c.left(),
			Y:          c.cursor.Y,
			Widths:     widths,
			Header:     header,
			Continued:  continued,
			HeaderText: c.reg.Color(style.ColorInverse),
			BodyText:   c.reg.Color(style.ColorText),
			Border:     c.reg.Color(style.ColorBorder),
			HeaderFont: c.reg.TableFont(true),
			BodyFont:   bodyFont,
			Padding:    tableCellPadding,
			LineHeight: c.tableLineHeight(),
		}
	}

	op := slice(false)
	y := c.cursor.Y + header.Height
	for _, r := range rows {
		avail := c.cursor.Limit() - y
		oversized := r.Height > c.maxRowHeight(header)
		if r.Height > avail && len(op.Rows) > 0 && (!oversized || avail < c.minRowHeight()) {
			c.emit(op)
			c.breakPage()
			op = slice(true)
			y = c.cursor.Y + header.Height
			avail = c.cursor.Limit() - y
		}
		r = c.truncateRow(r, widths, bodyFont, avail)
		op.Rows = append(op.Rows, r)
		y += r.Height
	}
	c.emit(op)
	c.cursor.Advance(y - c.cursor.Y)
	c.cursor.Advance(tableGap)
}
