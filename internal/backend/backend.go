// Package backend turns a laid out document into output bytes. The FPDF
// backend writes PDF directly in pure Go; the Chrome backend prints the HTML
// rendering of the same draw operations through headless Chrome.
package backend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alnah/go-corridorpdf/internal/layout"
)

// Sentinel errors for backend operations.
var (
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrUnknownBackend = errors.New("unknown backend")
)

// Backend names.
const (
	NameFPDF   = "fpdf"
	NameChrome = "chrome"
)

// Metadata is written into the document information dictionary.
type Metadata struct {
	Title    string
	Subject  string
	Author   string
	Creator  string
	Keywords string
	Language string // BCP 47 tag, used by the HTML rendering
	Created  time.Time
}

// Backend renders a document to bytes.
type Backend interface {
	Render(ctx context.Context, doc *layout.Document, meta Metadata) ([]byte, error)
	Close() error
}

// New returns the backend registered under name. An empty name selects
// the FPDF backend.
func New(name string, timeout time.Duration) (Backend, error) {
	switch name {
	case "", NameFPDF:
		return NewFPDF(), nil
	case NameChrome:
		return NewChrome(timeout), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}
