package render

import (
	"errors"
	"fmt"

	"github.com/alnah/go-corridorpdf/block"
	"github.com/alnah/go-corridorpdf/internal/layout"
	"github.com/alnah/go-corridorpdf/internal/style"
)

// ErrPageLimit is returned when a document grows past Input.MaxPages.
var ErrPageLimit = errors.New("page limit exceeded")

// Options are the recognized assembler settings.
type Options struct {
	TitleColor     string  // palette key, default primary
	MarginOverride float64 // points, 0 keeps the registry margin
	FooterText     string
}

// Input is one generation request.
type Input struct {
	Title    string
	Subtitle string
	Blocks   []block.Block
	Options  Options
	Width    float64 // page width in points
	Height   float64 // page height in points
	MaxPages int     // 0 means unlimited
}

// MinMargin is the smallest margin that still holds the footer rule and
// the footer line below the content area.
func MinMargin(reg *style.Registry) float64 {
	return reg.LineHeight(reg.FooterFont()) + footerGap
}

// ResolveMargin returns the margin to lay out with and whether the
// override was used. Overrides below MinMargin, and overrides that would
// leave less than half of the shorter page side for content, are ignored.
// The registry margin is raised to MinMargin when it is smaller.
func ResolveMargin(reg *style.Registry, override, width, height float64) (float64, bool) {
	lower := MinMargin(reg)
	if override >= lower && override < min(width, height)/4 {
		return override, true
	}
	return max(reg.Margin(), lower), false
}

// Assemble lays out a document. It fails only when MaxPages is exceeded.
func Assemble(reg *style.Registry, m layout.Metrics, in Input) (*layout.Document, error) {
	margin, _ := ResolveMargin(reg, in.Options.MarginOverride, in.Width, in.Height)
	c := NewContext(reg, m, in.Width, in.Height, margin)

	c.drawHeader(in.Title, in.Subtitle, in.Options.TitleColor)

	for i := range in.Blocks {
		c.Render(i, in.Blocks)
		if in.MaxPages > 0 && len(c.pages) > in.MaxPages {
			return nil, fmt.Errorf("%w: more than %d pages", ErrPageLimit, in.MaxPages)
		}
	}
	c.closeFlow()

	c.drawFooters(in.Options.FooterText)

	return &layout.Document{
		Title:    in.Title,
		Subtitle: in.Subtitle,
		Width:    in.Width,
		Height:   in.Height,
		Pages:    c.pages,
	}, nil
}

// drawHeader paints the title band across the top of the first page and
// moves the cursor below it.
func (c *Context) drawHeader(title, subtitle, colorKey string) {
	c.block = layout.SourceHeader
	if colorKey == "" {
		colorKey = style.ColorPrimary
	}

	tf, sf := c.reg.TitleFont(), c.reg.SubtitleFont()
	tlh, slh := c.reg.LineHeight(tf), c.reg.LineHeight(sf)
	height := 2*headerBandPad + tlh
	if subtitle != "" {
		height += subtitleGap + slh
	}

	c.emit(layout.RectOp{
		Origin: c.origin(layout.RoleHeader),
		X:      0, Y: 0, W: c.width, H: height,
		Fill: c.reg.Color(colorKey), Filled: true,
	})
	inverse := c.reg.Color(style.ColorInverse)
	if t := c.fitText(title, tf, c.contentWidth()); t != "" {
		c.emit(layout.TextOp{
			Origin: c.origin(layout.RoleHeader),
			X:      c.left(), Y: layout.Baseline(headerBandPad, tf, tlh),
			Text: t, Font: tf, Color: inverse,
		})
	}
	if s := c.fitText(subtitle, sf, c.contentWidth()); s != "" {
		c.emit(layout.TextOp{
			Origin: c.origin(layout.RoleHeader),
			X:      c.left(), Y: layout.Baseline(headerBandPad+tlh+subtitleGap, sf, slh),
			Text: s, Font: sf, Color: inverse,
		})
	}

	c.cursor.Y = min(max(c.cursor.Top(), height+headerGap), c.cursor.Limit())
}

// drawFooters writes the page label and footer text on every page.
func (c *Context) drawFooters(text string) {
	c.block = layout.SourceFooter
	f := c.reg.FooterFont()
	muted := c.reg.Color(style.ColorMuted)
	margin := c.cursor.Margin
	lineY := c.cursor.Limit() + min(footerGap/2, margin/4)
	baseline := c.cursor.PageHeight - margin/2 + f.Size/3

	total := len(c.pages)
	for i := range c.pages {
		label := fmt.Sprintf("Page %d of %d", i+1, total)
		lw := c.measure(label, f)
		ops := []layout.Op{
			layout.LineOp{
				Origin: c.origin(layout.RoleFooter),
				X1:     c.left(), Y1: lineY, X2: c.right(), Y2: lineY,
				Color: c.reg.Color(style.ColorBorder), Width: ruleWidth,
			},
			layout.TextOp{
				Origin: c.origin(layout.RoleFooter),
				X:      c.right() - lw, Y: baseline,
				Text: label, Font: f, Color: muted,
			},
		}
		if t := c.fitText(text, f, c.contentWidth()-lw-footerGap); t != "" {
			ops = append(ops, layout.TextOp{
				Origin: c.origin(layout.RoleFooter),
				X:      c.left(), Y: baseline,
				Text: t, Font: f, Color: muted,
			})
		}
		c.pages[i].Ops = append(c.pages[i].Ops, ops...)
	}
}
