// Package metrics measures text set in the PDF core fonts.
package metrics

import (
	"sync"

	"github.com/go-pdf/fpdf"

	"github.com/alnah/go-corridorpdf/internal/layout"
	"github.com/alnah/go-corridorpdf/internal/style"
)

// Core measures strings with the width tables of the fpdf core fonts. It is
// safe for concurrent use.
type Core struct {
	mu  sync.Mutex
	pdf *fpdf.Fpdf
}

// NewCore creates a Core metrics provider.
func NewCore() *Core {
	return &Core{pdf: fpdf.New("P", "pt", "Letter", "")}
}

// StringWidth implements layout.Metrics.
func (c *Core) StringWidth(s string, f style.Font) float64 {
	if s == "" || f.Size <= 0 {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pdf.SetFont(style.CoreFamily(f.Family), FontStyle(f), f.Size)
	return c.pdf.GetStringWidth(ToWinAnsi(s))
}

// FontStyle returns the fpdf style string for f.
func FontStyle(f style.Font) string {
	if f.Bold {
		return "B"
	}
	return ""
}

var _ layout.Metrics = (*Core)(nil)
