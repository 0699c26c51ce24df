package render

import (
	"math"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-corridorpdf/block"
	"github.com/alnah/go-corridorpdf/internal/layout"
	"github.com/alnah/go-corridorpdf/internal/style"
)

// codeRun is a colored token run within one display line.
type codeRun struct {
	text  string
	color style.Color
	bold  bool
}

type codeLine []codeRun

// highlight tokenises the code block and returns one run list per source
// line. Unknown languages use the plain-text lexer.
func highlight(cb block.CodeBlock, styleName string, fallback style.Color) []codeLine {
	src := make([]string, len(cb.Lines))
	for i, l := range cb.Lines {
		src[i] = strings.ReplaceAll(l, "\t", strings.Repeat(" ", codeTabWidth))
	}

	out := make([]codeLine, len(src))
	lexer := lexers.Get(cb.Language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	it, err := chroma.Coalesce(lexer).Tokenise(nil, strings.Join(src, "\n")+"\n")
	if err != nil {
		for i, l := range src {
			out[i] = codeLine{{text: l, color: fallback}}
		}
		return out
	}

	theme := styles.Get(styleName)
	for i, toks := range chroma.SplitTokensIntoLines(it.Tokens()) {
		if i >= len(out) {
			break
		}
		for _, tok := range toks {
			text := strings.TrimRight(tok.Value, "\n")
			if text == "" {
				continue
			}
			entry := theme.Get(tok.Type)
			col := fallback
			if entry.Colour.IsSet() {
				col = style.Color{R: entry.Colour.Red(), G: entry.Colour.Green(), B: entry.Colour.Blue()}
			}
			out[i] = append(out[i], codeRun{text: text, color: col, bold: entry.Bold == chroma.Yes})
		}
	}
	return out
}

// wrapCode splits each line into display lines of at most cols runes.
func wrapCode(lines []codeLine, cols int) []codeLine {
	if cols < 1 {
		cols = 1
	}
	var out []codeLine
	for _, l := range lines {
		var cur codeLine
		n := 0
		for _, r := range l {
			rs := []rune(r.text)
			for len(rs) > 0 {
				if n == cols {
					out = append(out, cur)
					cur, n = nil, 0
				}
				take := min(cols-n, len(rs))
				cur = append(cur, codeRun{text: string(rs[:take]), color: r.color, bold: r.bold})
				n += take
				rs = rs[take:]
			}
		}
		out = append(out, cur)
	}
	return out
}

// renderCode draws a code block on a tinted background, split between
// pages at line boundaries with one background box per page.
func (c *Context) renderCode(cb block.CodeBlock) {
	f := c.reg.CodeFont()
	lh := c.reg.LineHeight(f)
	textColor := c.reg.Color(style.ColorText)

	cols := 1
	if cw := c.measure("M", f); cw > 0 {
		cols = int(math.Floor((c.contentWidth() - 2*codePad) / cw))
	}
	lines := wrapCode(highlight(cb, c.reg.CodeStyle(), textColor), cols)
	if len(lines) == 0 {
		lines = []codeLine{nil}
	}

	for i := 0; i < len(lines); {
		c.ensure(2*codePad + lh)
		n := int(math.Floor((c.cursor.Remaining() - 2*codePad) / lh))
		n = max(1, min(n, len(lines)-i))
		h := float64(n)*lh + 2*codePad

		c.emit(layout.RectOp{
			Origin: c.origin(layout.RoleCode),
			X:      c.left(), Y: c.cursor.Y, W: c.contentWidth(), H: h,
			Fill: c.reg.Color(style.ColorCodeBackground), Filled: true,
		})
		for k := 0; k < n; k++ {
			top := c.cursor.Y + codePad + float64(k)*lh
			x := c.left() + codePad
			for _, r := range lines[i+k] {
				rf := f
				rf.Bold = r.bold
				c.emit(layout.TextOp{
					Origin: c.origin(layout.RoleCode),
					X:      x, Y: layout.Baseline(top, f, lh),
					Text: r.text, Font: rf, Color: r.color,
				})
				x += c.measure(r.text, rf)
			}
		}
		c.cursor.Advance(h)
		i += n
		if i < len(lines) {
			c.breakPage()
		}
	}
	c.cursor.Advance(codeGap)
}
