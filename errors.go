package corridorpdf

import (
	"errors"

	"github.com/alnah/go-corridorpdf/internal/assets"
	"github.com/alnah/go-corridorpdf/internal/backend"
	"github.com/alnah/go-corridorpdf/internal/render"
	"github.com/alnah/go-corridorpdf/internal/style"
)

// Sentinel errors for library operations.
var (
	ErrPageLimit = render.ErrPageLimit

	// Backend errors.
	ErrPDFGeneration  = backend.ErrPDFGeneration
	ErrBrowserConnect = backend.ErrBrowserConnect
	ErrPageCreate     = backend.ErrPageCreate
	ErrPageLoad       = backend.ErrPageLoad
	ErrUnknownBackend = backend.ErrUnknownBackend

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Theme loading errors.
	ErrThemeNotFound    = assets.ErrThemeNotFound
	ErrInvalidTheme     = style.ErrInvalidTheme
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
