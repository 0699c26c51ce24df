package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	corridorpdf "github.com/alnah/go-corridorpdf"
	"github.com/alnah/go-corridorpdf/internal/config"
	"github.com/alnah/go-corridorpdf/internal/dateutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput       = errors.New("no input specified")
	ErrInvalidDate   = errors.New("invalid document date")
	ErrInvalidFlag   = errors.New("invalid flag value")
	ErrFailedConvert = errors.New("conversion failed")
)

// footerSeparator joins the footer text and the document date.
const footerSeparator = " | "

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	cfg       *config.Config
	date      time.Time // metadata and dated file names
	dateText  string    // shown in the footer, may be empty
	html      bool
	datedName bool
}

// loadConfig builds the effective configuration.
// Precedence: CLI flags > env vars > config file > defaults.
func loadConfig(flags *convertFlags, env *envConfig) (*config.Config, error) {
	name := flags.common.config
	if name == "" {
		name = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(env, cfg)
	if err := mergeFlags(flags, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) error {
	// Document flags
	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
	if flags.document.subtitle != "" {
		cfg.Document.Subtitle = flags.document.subtitle
	}
	if flags.document.date != "" {
		cfg.Document.Date = flags.document.date
	}

	// Layout flags
	if flags.layout.pageSize != "" {
		cfg.Page.Size = flags.layout.pageSize
	}
	if flags.layout.orientation != "" {
		cfg.Page.Orientation = flags.layout.orientation
	}
	if flags.layout.margin != 0 {
		cfg.Page.Margin = flags.layout.margin
	}
	if flags.layout.footerText != "" {
		cfg.Footer.Text = flags.layout.footerText
	}
	if flags.layout.titleColor != "" {
		cfg.Theme.TitleColor = flags.layout.titleColor
	}

	// Theme flags
	if flags.theme.name != "" {
		cfg.Theme.Name = flags.theme.name
	}
	if flags.theme.path != "" {
		cfg.Theme.BasePath = flags.theme.path
	}

	// Render flags
	if flags.render.backend != "" {
		cfg.Render.Backend = flags.render.backend
	}
	if flags.render.maxPages != maxPagesUnset {
		if flags.render.maxPages < 0 {
			return fmt.Errorf("%w: --max-pages %d", ErrInvalidFlag, flags.render.maxPages)
		}
		cfg.Render.MaxPages = flags.render.maxPages
	}
	if flags.render.timeout != "" {
		cfg.Render.Timeout = flags.render.timeout
	}

	// Output flags
	if flags.outputMode.html {
		cfg.Output.HTML = true
	}
	if flags.outputMode.datedName {
		cfg.Output.DatedName = true
	}

	// Log flags
	if flags.common.logFile != "" {
		cfg.Log.File = flags.common.logFile
	}
	return nil
}

// converterOptions maps the configuration onto converter options.
func converterOptions(cfg *config.Config, logger *zap.Logger) ([]corridorpdf.Option, error) {
	opts := []corridorpdf.Option{
		corridorpdf.WithMaxPages(cfg.Render.MaxPages),
		corridorpdf.WithLogger(logger),
	}
	if cfg.Theme.Name != "" {
		opts = append(opts, corridorpdf.WithTheme(cfg.Theme.Name))
	}
	if cfg.Theme.BasePath != "" {
		opts = append(opts, corridorpdf.WithAssetPath(cfg.Theme.BasePath))
	}
	if cfg.Render.Backend != "" {
		opts = append(opts, corridorpdf.WithBackend(cfg.Render.Backend))
	}
	timeout, err := cfg.Render.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		opts = append(opts, corridorpdf.WithTimeout(timeout))
	}
	return opts, nil
}

// newConversionParams resolves the "auto" date once for the entire batch.
func newConversionParams(cfg *config.Config, now time.Time) (*conversionParams, error) {
	date, text, err := dateutil.DocumentDate(cfg.Document.Date, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return &conversionParams{
		cfg:       cfg,
		date:      date,
		dateText:  text,
		html:      cfg.Output.HTML,
		datedName: cfg.Output.DatedName,
	}, nil
}

// runConvert discovers the input files and converts them with the pool.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, params *conversionParams, pool Pool, env *Environment, log *zap.Logger) error {
	inputPath, err := resolveInputPath(positionalArgs, params.cfg)
	if err != nil {
		return err
	}

	files, err := discoverFiles(inputPath, params.cfg.Output.DefaultDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	log.Debug("discovered files", zap.String("input", inputPath), zap.Int("count", len(files)))

	results := convertBatch(ctx, pool, files, params)

	if failed := printResults(results, flags.common.quiet, params.cfg, log, env); failed > 0 {
		return newBatchError(results)
	}
	return nil
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// documentTitle picks the header title: config → first H1 → file name.
func documentTitle(configured, firstHeading, path string) string {
	if configured != "" {
		return configured
	}
	if firstHeading != "" {
		return firstHeading
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// footerText joins the configured footer text and the document date.
func footerText(text, date string) string {
	switch {
	case text == "":
		return date
	case date == "":
		return text
	}
	return text + footerSeparator + date
}

// buildInput assembles the converter input for one markdown file.
func buildInput(params *conversionParams, markdown, path string) corridorpdf.Input {
	cfg := params.cfg
	blocks := corridorpdf.Normalize(markdown)

	return corridorpdf.Input{
		Title:    documentTitle(cfg.Document.Title, corridorpdf.FirstTitle(blocks), path),
		Subtitle: cfg.Document.Subtitle,
		Markdown: markdown,
		Blocks:   blocks,
		Options: corridorpdf.Options{
			TitleColor: cfg.Theme.TitleColor,
			Margin:     cfg.Page.Margin,
			FooterText: footerText(cfg.Footer.Text, params.dateText),
		},
		Page: &corridorpdf.PageSettings{
			Size:        cfg.Page.Size,
			Orientation: cfg.Page.Orientation,
		},
		Date:     params.date,
		Author:   cfg.Document.Author,
		Subject:  cfg.Document.Subject,
		Keywords: cfg.Document.Keywords,
		Language: cfg.Document.Language,
		HTML:     params.html,
	}
}
