package corridorpdf

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alnah/go-corridorpdf/block"
	"github.com/alnah/go-corridorpdf/internal/assets"
	"github.com/alnah/go-corridorpdf/internal/backend"
	"github.com/alnah/go-corridorpdf/internal/fileutil"
	"github.com/alnah/go-corridorpdf/internal/layout"
	"github.com/alnah/go-corridorpdf/internal/metrics"
	"github.com/alnah/go-corridorpdf/internal/pipeline"
	"github.com/alnah/go-corridorpdf/internal/render"
	"github.com/alnah/go-corridorpdf/internal/style"
)

// Creator is written to the document information dictionary.
const Creator = "go-corridorpdf"

// Converter orchestrates the markdown-to-PDF pipeline: normalize, lay out,
// render. Create with NewConverter, use Convert for conversion, and Close
// when done. Safe for concurrent use; the chrome backend serializes its
// browser access.
type Converter struct {
	cfg      converterConfig
	resolver *assets.Resolver
	registry *style.Registry
	metrics  layout.Metrics
	backend  backend.Backend
	logger   *zap.Logger
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithTheme, WithBackend, WithMaxPages).
// Returns error if the theme cannot be loaded or the backend is unknown.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			timeout: defaultTimeout,
			theme:   assets.DefaultThemeName,
			backend: backend.NameFPDF,
			logger:  zap.NewNop(),
		},
		metrics: metrics.NewCore(),
	}

	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.cfg.logger

	resolver, err := assets.NewResolver(c.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	c.resolver = resolver

	if err := c.loadTheme(); err != nil {
		return nil, err
	}

	// Create backend if not injected (e.g., by tests)
	if c.backend == nil {
		be, err := backend.New(strings.ToLower(c.cfg.backend), c.cfg.timeout)
		if err != nil {
			return nil, err
		}
		c.backend = be
	}

	return c, nil
}

// loadTheme resolves the theme input (name or path) to a style registry.
func (c *Converter) loadTheme() error {
	input := c.cfg.theme
	if input == "" {
		input = assets.DefaultThemeName
	}

	if fileutil.IsFilePath(input) {
		data, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading theme file %q: %w", input, err)
		}
		reg, err := style.ParseTheme(data)
		if err != nil {
			return fmt.Errorf("theme file %q: %w", input, err)
		}
		c.registry = reg
		return nil
	}

	reg, err := assets.LoadRegistry(c.resolver, input)
	if err != nil {
		return fmt.Errorf("loading theme %q: %w", input, err)
	}
	c.registry = reg
	return nil
}

// Themes lists the theme names this converter can load.
func (c *Converter) Themes() ([]string, error) {
	return c.resolver.Themes()
}

// Convert normalizes, lays out and renders one document.
// The context is used for cancellation. Invalid page settings, margins and
// palette keys fall back to defaults with a warning. Recovers from internal
// panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	log := c.logger.With(zap.String("request_id", requestID))
	start := time.Now()

	blocks := input.Blocks
	if blocks == nil {
		blocks = pipeline.Normalize(input.Markdown)
	}
	log.Debug("normalized input", zap.Int("blocks", len(blocks)))

	width, height := c.pageDimensions(input.Page, log)
	opts := c.renderOptions(input.Options, width, height, log)

	doc, err := render.Assemble(c.registry, c.metrics, render.Input{
		Title:    input.Title,
		Subtitle: input.Subtitle,
		Blocks:   blocks,
		Options:  opts,
		Width:    width,
		Height:   height,
		MaxPages: c.cfg.maxPages,
	})
	if err != nil {
		return nil, err
	}
	log.Debug("laid out document", zap.Int("pages", doc.PageCount()), zap.Duration("elapsed", time.Since(start)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	meta := metadata(input)
	res := &Result{
		Pages:     doc.PageCount(),
		Summary:   summarize(doc),
		RequestID: requestID,
	}
	if input.HTML {
		res.HTML = []byte(backend.RenderHTML(doc, meta))
	}

	pdf, err := c.backend.Render(ctx, doc, meta)
	if err != nil {
		return nil, fmt.Errorf("rendering PDF: %w", err)
	}
	res.PDF = pdf

	log.Debug("rendered document",
		zap.String("backend", c.cfg.backend),
		zap.Int("bytes", len(pdf)),
		zap.Duration("elapsed", time.Since(start)))
	return res, nil
}

// Close releases backend resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.backend != nil {
		return c.backend.Close()
	}
	return nil
}

// pageDimensions validates page settings, warning before falling back.
func (c *Converter) pageDimensions(p *PageSettings, log *zap.Logger) (float64, float64) {
	if err := p.Validate(); err != nil {
		log.Warn("invalid page settings, using defaults", zap.Error(err))
	}
	return p.Dimensions()
}

// renderOptions maps Options onto the assembler, warning on values that
// the layout will ignore.
func (c *Converter) renderOptions(o Options, width, height float64, log *zap.Logger) render.Options {
	if o.TitleColor != "" {
		if _, ok := c.registry.Lookup(o.TitleColor); !ok {
			log.Warn("unknown title color, using primary",
				zap.String("color", o.TitleColor),
				zap.Strings("available", c.registry.Keys()))
		}
	}
	if o.Margin != 0 {
		if fallback, ok := render.ResolveMargin(c.registry, o.Margin, width, height); !ok {
			log.Warn("margin out of range, using theme margin",
				zap.Error(fmt.Errorf("%w: %.2f", ErrInvalidMargin, o.Margin)),
				zap.Float64("min", render.MinMargin(c.registry)),
				zap.Float64("fallback", fallback))
		}
	}
	return render.Options{
		TitleColor:     o.TitleColor,
		MarginOverride: o.Margin,
		FooterText:     o.FooterText,
	}
}

func metadata(in Input) backend.Metadata {
	subject := in.Subject
	if subject == "" {
		subject = in.Subtitle
	}
	return backend.Metadata{
		Title:    in.Title,
		Subject:  subject,
		Author:   in.Author,
		Creator:  Creator,
		Keywords: in.Keywords,
		Language: in.Language,
		Created:  in.Date,
	}
}

// summarize lists, per page, the op count and the content blocks drawn.
func summarize(doc *layout.Document) []PageSummary {
	out := make([]PageSummary, len(doc.Pages))
	for i, p := range doc.Pages {
		s := PageSummary{Number: p.Number, Ops: len(p.Ops), Blocks: []int{}}
		for _, op := range p.Ops {
			b := op.Source()
			if b < 0 {
				continue
			}
			if n := len(s.Blocks); n == 0 || s.Blocks[n-1] != b {
				s.Blocks = append(s.Blocks, b)
			}
		}
		out[i] = s
	}
	return out
}

// Normalize parses markdown into blocks, for callers that want to inspect
// or edit the block sequence before converting it.
func Normalize(markdown string) []block.Block {
	return pipeline.Normalize(markdown)
}

// FirstTitle returns the text of the first level-1 heading, or "".
func FirstTitle(blocks []block.Block) string {
	return pipeline.FirstTitle(blocks)
}
