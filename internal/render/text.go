package render

import (
	"strings"
	"unicode"

	"github.com/alnah/go-corridorpdf/block"
	"github.com/alnah/go-corridorpdf/internal/layout"
	"github.com/alnah/go-corridorpdf/internal/style"
)

// piece is one word or collapsed whitespace run of a span.
type piece struct {
	text  string
	span  block.Span
	space bool
	width float64
}

// textLine is one wrapped line of pieces.
type textLine struct {
	pieces []piece
	width  float64
}

func (l *textLine) hasWord() bool {
	for _, p := range l.pieces {
		if !p.space {
			return true
		}
	}
	return false
}

func (l *textLine) add(p piece) {
	l.pieces = append(l.pieces, p)
	l.width += p.width
}

func (l *textLine) trimRight() {
	for n := len(l.pieces); n > 0 && l.pieces[n-1].space; n = len(l.pieces) {
		l.width -= l.pieces[n-1].width
		l.pieces = l.pieces[:n-1]
	}
}

// spanFont resolves the font of a span set on top of base.
func (c *Context) spanFont(s block.Span, base style.Font) style.Font {
	if s.Code {
		f := c.reg.CodeFont()
		f.Bold = s.Bold
		return f
	}
	f := base
	f.Bold = base.Bold || s.Bold
	return f
}

// tokens splits spans into words and single-space separators.
func tokens(spans []block.Span) []piece {
	var out []piece
	for _, s := range spans {
		var word strings.Builder
		flush := func() {
			if word.Len() > 0 {
				out = append(out, piece{text: word.String(), span: s})
				word.Reset()
			}
		}
		for _, r := range s.Text {
			if unicode.IsSpace(r) {
				flush()
				if n := len(out); n == 0 || !out[n-1].space {
					out = append(out, piece{text: " ", span: s, space: true})
				}
				continue
			}
			word.WriteRune(r)
		}
		flush()
	}
	return out
}

// wrap breaks spans into lines no wider than width. Words wider than a full
// line are split between runes.
func (c *Context) wrap(spans []block.Span, base style.Font, width float64) []textLine {
	var (
		lines []textLine
		cur   textLine
	)
	flush := func() {
		cur.trimRight()
		lines = append(lines, cur)
		cur = textLine{}
	}

	for _, p := range tokens(spans) {
		p.width = c.measure(p.text, c.spanFont(p.span, base))
		if p.space {
			if len(cur.pieces) > 0 {
				cur.add(p)
			}
			continue
		}
		if cur.width+p.width > width && cur.hasWord() {
			flush()
		}
		if p.width <= width {
			cur.add(p)
			continue
		}
		chunks := c.splitWord(p, base, width)
		for i, ch := range chunks {
			cur.add(ch)
			if i < len(chunks)-1 {
				flush()
			}
		}
	}
	if cur.hasWord() {
		flush()
	}
	return lines
}

// splitWord cuts an oversized word into chunks that each fit width. Every
// chunk holds at least one rune.
func (c *Context) splitWord(p piece, base style.Font, width float64) []piece {
	f := c.spanFont(p.span, base)
	var out []piece
	runes := []rune(p.text)
	for len(runes) > 0 {
		n := 1
		for n < len(runes) && c.measure(string(runes[:n+1]), f) <= width {
			n++
		}
		chunk := string(runes[:n])
		out = append(out, piece{text: chunk, span: p.span, width: c.measure(chunk, f)})
		runes = runes[n:]
	}
	return out
}

// wrapPlain wraps unstyled text and returns the line strings.
func (c *Context) wrapPlain(text string, f style.Font, width float64) []string {
	lines := c.wrap([]block.Span{{Text: text}}, f, width)
	out := make([]string, len(lines))
	for i, l := range lines {
		var b strings.Builder
		for _, p := range l.pieces {
			b.WriteString(p.text)
		}
		out[i] = b.String()
	}
	return out
}

// drawLine emits one wrapped line whose box top is top. Adjacent pieces
// sharing a style are drawn as one text op.
func (c *Context) drawLine(l textLine, x, top, lh float64, base style.Font, color style.Color, role layout.Role) {
	baseline := layout.Baseline(top, base, lh)
	for i := 0; i < len(l.pieces); {
		j := i
		var text strings.Builder
		var w float64
		for ; j < len(l.pieces) && sameStyle(l.pieces[i].span, l.pieces[j].span); j++ {
			text.WriteString(l.pieces[j].text)
			w += l.pieces[j].width
		}
		s := l.pieces[i].span
		f := c.spanFont(s, base)
		col := color
		if s.Code {
			col = c.reg.Color(style.ColorCode)
			c.emit(layout.RectOp{
				Origin: c.origin(role),
				X:      x - 1, Y: top + 1, W: w + 2, H: lh - 2,
				Fill: c.reg.Color(style.ColorCodeBackground), Filled: true,
			})
		}
		c.emit(layout.TextOp{
			Origin: c.origin(role),
			X:      x, Y: baseline,
			Text: text.String(), Font: f, Color: col,
		})
		x += w
		i = j
	}
}

func sameStyle(a, b block.Span) bool {
	return a.Bold == b.Bold && a.Code == b.Code
}

// flowLines writes wrapped lines from the cursor down, breaking pages at
// line boundaries. first, when set, runs before the first line is drawn.
func (c *Context) flowLines(lines []textLine, x, lh float64, base style.Font, color style.Color, role layout.Role, first func(top float64)) {
	for i, l := range lines {
		c.ensure(lh)
		if i == 0 && first != nil {
			first(c.cursor.Y)
		}
		c.drawLine(l, x, c.cursor.Y, lh, base, color, role)
		c.cursor.Advance(lh)
	}
}

func (c *Context) renderParagraph(p block.Paragraph) {
	base := c.reg.BodyFont(false)
	lh := c.reg.LineHeight(base)
	lines := c.wrap(p.Spans, base, c.contentWidth())
	if len(lines) == 0 {
		return
	}
	c.flowLines(lines, c.left(), lh, base, c.reg.Color(style.ColorText), layout.RoleBody, nil)
	c.cursor.Advance(paragraphGap)
}

func (c *Context) renderBullet(b block.BulletItem) {
	base := c.reg.BodyFont(false)
	lh := c.reg.LineHeight(base)

	indent := b.Indent
	if indent < 0 {
		indent = 0
	}
	if indent > maxBulletIndent {
		indent = maxBulletIndent
	}
	markerX := c.left() + float64(indent)*bulletIndent

	marker, markerColor := bulletMarker, c.reg.Color(style.ColorPrimary)
	if b.Marker != "" {
		marker, markerColor = b.Marker, c.reg.Color(style.ColorText)
	}
	markerW := c.measure(marker, base)
	if markerW < bulletIndent-bulletMarkerGap {
		markerW = bulletIndent - bulletMarkerGap
	}
	textX := markerX + markerW + bulletMarkerGap

	width := c.right() - textX
	lines := c.wrap(b.Spans, base, width)
	if len(lines) == 0 {
		lines = []textLine{{}}
	}
	c.flowLines(lines, textX, lh, base, c.reg.Color(style.ColorText), layout.RoleBullet, func(top float64) {
		c.emit(layout.TextOp{
			Origin: c.origin(layout.RoleBullet),
			X:      markerX, Y: layout.Baseline(top, base, lh),
			Text: marker, Font: base, Color: markerColor,
		})
	})
	c.cursor.Advance(bulletGap)
}
