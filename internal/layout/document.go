package layout

import "github.com/alnah/go-corridorpdf/internal/style"

// Page is one finished page of draw instructions in paint order.
type Page struct {
	Number int // one-based
	Ops    []Op
}

// Document is the finished multi-page layout.
type Document struct {
	Title    string
	Subtitle string
	Width    float64
	Height   float64
	Pages    []Page
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int { return len(d.Pages) }

// Metrics measures text for line wrapping.
type Metrics interface {
	// StringWidth returns the advance width of s set in f, in points.
	StringWidth(s string, f style.Font) float64
}

// ApproxMetrics estimates widths as a fixed fraction of the font size per
// rune. Used where exact metrics are unavailable.
type ApproxMetrics struct {
	Ratio float64 // em fraction per rune; 0 means 0.5
}

// StringWidth implements Metrics.
func (m ApproxMetrics) StringWidth(s string, f style.Font) float64 {
	r := m.Ratio
	if r == 0 {
		r = 0.5
	}
	n := 0
	for range s {
		n++
	}
	return float64(n) * f.Size * r
}

var _ Metrics = ApproxMetrics{}
