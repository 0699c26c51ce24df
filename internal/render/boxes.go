package render

import (
	"github.com/alnah/go-corridorpdf/block"
	"github.com/alnah/go-corridorpdf/internal/layout"
	"github.com/alnah/go-corridorpdf/internal/style"
)

// place reserves a w by h box in the current flow row. A box that does not
// fit beside the previous one wraps to a new row, and a row that does not
// fit on the page moves to the next one. It returns the box origin.
func (c *Context) place(w, h float64) (x, y float64) {
	if c.flow.active && c.flow.x+w <= c.right() && c.flow.top+h <= c.cursor.Limit() {
		x, y = c.flow.x, c.flow.top
		c.flow.x += w + flowGap
		c.flow.height = max(c.flow.height, h)
		return x, y
	}
	c.closeFlow()
	c.ensure(h)
	c.flow = flow{active: true, x: c.left() + w + flowGap, top: c.cursor.Y, height: h}
	return c.left(), c.cursor.Y
}

// closeFlow moves the cursor below the current row of boxes.
func (c *Context) closeFlow() {
	if !c.flow.active {
		return
	}
	c.cursor.Y = c.flow.top
	c.cursor.Advance(c.flow.height + flowGap)
	c.flow = flow{}
}

func (c *Context) renderBadge(b block.Badge) {
	f := c.reg.BadgeFont(true)
	label := c.fitText(b.Label, f, c.contentWidth()-2*badgePadX)
	w := c.measure(label, f) + 2*badgePadX

	x, y := c.place(w, badgeHeight)
	c.emit(layout.RectOp{
		Origin: c.origin(layout.RoleBadge),
		X:      x, Y: y, W: w, H: badgeHeight,
		Fill: c.reg.Color(b.Color), Filled: true,
	})
	if label != "" {
		c.emit(layout.TextOp{
			Origin: c.origin(layout.RoleBadge),
			X:      x + badgePadX, Y: layout.Baseline(y, f, badgeHeight),
			Text: label, Font: f, Color: c.reg.Color(style.ColorInverse),
		})
	}
}

func (c *Context) renderStats(s block.StatsCard) {
	x, y := c.place(statsWidth, statsHeight)
	accent := c.reg.Color(s.Color)
	inner := statsWidth - statsBarWidth - 2*statsPad

	c.emit(layout.RectOp{
		Origin: c.origin(layout.RoleStats),
		X:      x, Y: y, W: statsWidth, H: statsHeight,
		Fill: c.reg.Color(style.ColorWhite), Filled: true,
		Stroke: c.reg.Color(style.ColorBorder), Stroked: true, LineWidth: tableBorderWidth,
	})
	c.emit(layout.RectOp{
		Origin: c.origin(layout.RoleStats),
		X:      x, Y: y, W: statsBarWidth, H: statsHeight,
		Fill: accent, Filled: true,
	})

	tx := x + statsBarWidth + statsPad
	labelFont := c.reg.BadgeFont(false)
	if label := c.fitText(s.Label, labelFont, inner); label != "" {
		c.emit(layout.TextOp{
			Origin: c.origin(layout.RoleStats),
			X:      tx, Y: layout.Baseline(y+statsPad, labelFont, c.reg.LineHeight(labelFont)),
			Text: label, Font: labelFont, Color: c.reg.Color(style.ColorMuted),
		})
	}
	valueFont := c.reg.StatValueFont()
	if value := c.fitText(s.Value, valueFont, inner); value != "" {
		lh := c.reg.LineHeight(valueFont)
		c.emit(layout.TextOp{
			Origin: c.origin(layout.RoleStats),
			X:      tx, Y: layout.Baseline(y+statsHeight-statsPad-lh, valueFont, lh),
			Text: value, Font: valueFont, Color: accent,
		})
	}
}
