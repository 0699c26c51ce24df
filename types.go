package corridorpdf

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-corridorpdf/block"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// pageSizes holds portrait dimensions in points.
var pageSizes = map[string][2]float64{
	PageSizeLetter: {612, 792},
	PageSizeA4:     {595.28, 841.89},
	PageSizeLegal:  {612, 1008},
}

// PageSettings configures page dimensions.
type PageSettings struct {
	Size        string // "letter", "a4", "legal"
	Orientation string // "portrait", "landscape"
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeLetter,
		Orientation: OrientationPortrait,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults). Empty fields mean the
// default value. Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}
	if _, ok := pageSizes[strings.ToLower(p.Size)]; !ok && p.Size != "" {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}
	switch strings.ToLower(p.Orientation) {
	case "", OrientationPortrait, OrientationLandscape:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}
	return nil
}

// Dimensions returns the page width and height in points. Unknown sizes
// and orientations fall back to letter portrait.
func (p *PageSettings) Dimensions() (width, height float64) {
	size := pageSizes[PageSizeLetter]
	if p == nil {
		return size[0], size[1]
	}
	if s, ok := pageSizes[strings.ToLower(p.Size)]; ok {
		size = s
	}
	if strings.EqualFold(p.Orientation, OrientationLandscape) {
		return size[1], size[0]
	}
	return size[0], size[1]
}

// Options are per-document layout settings.
type Options struct {
	TitleColor string  // palette key for the header band (default "primary")
	Margin     float64 // points on every side (0 = theme margin)
	FooterText string  // left-aligned footer text on every page
}

// Input contains conversion parameters. Markdown is ignored when Blocks is
// non-nil. An empty body still yields one page with header and footer.
type Input struct {
	Title    string        // header band title
	Subtitle string        // second header line (optional)
	Markdown string        // markdown subset source
	Blocks   []block.Block // pre-built blocks (optional)
	Options  Options
	Page     *PageSettings // Page settings (optional, nil = defaults)

	// Document metadata.
	Date     time.Time // creation date (zero = now)
	Author   string
	Subject  string // defaults to Subtitle
	Keywords string
	Language string // BCP 47, used by the HTML rendering

	HTML bool // also return the HTML rendering
}

// PageSummary describes one laid out page.
type PageSummary struct {
	Number int
	Ops    int   // draw operations on the page
	Blocks []int // indices of the blocks with content on the page, in order
}

// Result is the outcome of a conversion.
type Result struct {
	PDF       []byte
	HTML      []byte // set when Input.HTML is true
	Pages     int
	Summary   []PageSummary
	RequestID string
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout   time.Duration
	theme     string
	assetPath string
	backend   string
	maxPages  int
	logger    *zap.Logger
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the browser timeout of the chrome backend.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("corridorpdf: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithTheme selects a theme by name, or by file path when the value
// contains a path separator.
func WithTheme(nameOrPath string) Option {
	return func(c *Converter) {
		c.cfg.theme = nameOrPath
	}
}

// WithAssetPath adds a directory whose themes/*.yaml files take precedence
// over the embedded themes.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithBackend selects the rendering backend: "fpdf" (default) or "chrome".
func WithBackend(name string) Option {
	return func(c *Converter) {
		c.cfg.backend = name
	}
}

// WithMaxPages fails conversions that lay out more than n pages.
// Zero or less means unlimited.
func WithMaxPages(n int) Option {
	return func(c *Converter) {
		c.cfg.maxPages = max(n, 0)
	}
}

// WithLogger sets the logger for timings and configuration fallbacks.
func WithLogger(l *zap.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.cfg.logger = l
		}
	}
}
