package render

import (
	"github.com/alnah/go-corridorpdf/block"
	"github.com/alnah/go-corridorpdf/internal/layout"
	"github.com/alnah/go-corridorpdf/internal/style"
)

// Render draws blocks[i] at the cursor. The blocks that follow are used to
// keep headings with their content.
func (c *Context) Render(i int, blocks []block.Block) {
	c.block = i
	b := blocks[i]

	switch b.(type) {
	case block.Badge, block.StatsCard:
	default:
		c.closeFlow()
	}

	switch b := b.(type) {
	case block.Heading:
		c.renderHeading(b, blocks[i+1:])
	case block.Paragraph:
		c.renderParagraph(b)
	case block.BulletItem:
		c.renderBullet(b)
	case block.Table:
		c.renderTable(b)
	case block.Badge:
		c.renderBadge(b)
	case block.StatsCard:
		c.renderStats(b)
	case block.CodeBlock:
		c.renderCode(b)
	case block.Rule:
		c.renderRule()
	}
}

// headingLines wraps a heading and returns the lines, font and line height.
func (c *Context) headingLines(h block.Heading) ([]textLine, style.Font, float64) {
	f := c.reg.HeadingFont(block.ClampLevel(h.Level))
	lines := c.wrap([]block.Span{{Text: h.Text}}, f, c.contentWidth())
	if len(lines) == 0 {
		lines = []textLine{{}}
	}
	return lines, f, c.reg.LineHeight(f)
}

// headingHeight is the vertical space a heading takes, gaps included.
func (c *Context) headingHeight(h block.Heading) float64 {
	lines, _, lh := c.headingLines(h)
	level := block.ClampLevel(h.Level)
	height := headingGapBefore[level-1] + float64(len(lines))*lh + headingGapAfter
	if level == 1 {
		height += underlineGap
	}
	return height
}

// minHeight is the space the first unbreakable unit of the remaining blocks
// needs, never more than a fresh page. Consecutive headings chain so a run
// of headings stays with the content below it. Blocks that draw nothing
// are skipped.
func (c *Context) minHeight(rest []block.Block) float64 {
	return min(c.leadHeight(rest), c.cursor.ContentHeight())
}

func (c *Context) leadHeight(rest []block.Block) float64 {
	if len(rest) == 0 {
		return 0
	}
	body := c.reg.LineHeight(c.reg.BodyFont(false))
	switch b := rest[0].(type) {
	case block.Heading:
		return c.headingHeight(b) + max(c.orphanBuffer(), c.leadHeight(rest[1:]))
	case block.Paragraph:
		if len(c.wrap(b.Spans, c.reg.BodyFont(false), c.contentWidth())) == 0 {
			return c.leadHeight(rest[1:])
		}
		return body
	case block.BulletItem:
		return body
	case block.Table:
		t := b.Normalize()
		if t.IsEmpty() {
			return c.leadHeight(rest[1:])
		}
		return c.tableLead(c.tableRows(t))
	case block.Badge:
		return badgeHeight
	case block.StatsCard:
		return statsHeight
	case block.CodeBlock:
		return 2*codePad + c.reg.LineHeight(c.reg.CodeFont())
	case block.Rule:
		return ruleHeight
	}
	return c.leadHeight(rest[1:])
}

func (c *Context) orphanBuffer() float64 {
	return orphanLines * c.reg.LineHeight(c.reg.BodyFont(false))
}

// renderHeading keeps the heading on the same page as the start of the
// content that follows it.
func (c *Context) renderHeading(h block.Heading, rest []block.Block) {
	level := block.ClampLevel(h.Level)
	lines, f, lh := c.headingLines(h)

	need := c.headingHeight(h) + max(c.orphanBuffer(), c.minHeight(rest))
	c.ensure(min(need, c.cursor.ContentHeight()))
	if !c.cursor.AtTop() {
		c.cursor.Advance(headingGapBefore[level-1])
	}

	color := c.reg.Color(style.ColorPrimary)
	if level == 3 {
		color = c.reg.Color(style.ColorSecondary)
	}
	for _, l := range lines {
		c.drawLine(l, c.left(), c.cursor.Y, lh, f, color, layout.RoleHeading)
		c.cursor.Advance(lh)
	}

	if level == 1 {
		y := c.cursor.Y + underlineGap/2
		c.emit(layout.LineOp{
			Origin: c.origin(layout.RoleHeading),
			X1:     c.left(), Y1: y, X2: c.right(), Y2: y,
			Color: c.reg.Color(style.ColorPrimary), Width: underlineWidth,
		})
		c.cursor.Advance(underlineGap)
	}
	c.cursor.Advance(headingGapAfter)
}

func (c *Context) renderRule() {
	c.ensure(ruleHeight)
	y := c.cursor.Y + ruleHeight/2
	c.emit(layout.LineOp{
		Origin: c.origin(layout.RoleRule),
		X1:     c.left(), Y1: y, X2: c.right(), Y2: y,
		Color: c.reg.Color(style.ColorBorder), Width: ruleWidth,
	})
	c.cursor.Advance(ruleHeight)
}
