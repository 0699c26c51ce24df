// Package config loads YAML configuration for the command line tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-corridorpdf/internal/fileutil"
	"github.com/alnah/go-corridorpdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// DirName is the directory under the user config dir searched for configs.
const DirName = "go-corridorpdf"

// Field length limits.
const (
	MaxTitleLength       = 200
	MaxSubtitleLength    = 200
	MaxDateLength        = 30 // "2025-12-31" or "auto:MMMM D, YYYY"
	MaxTextLength        = 500
	MaxNameLength        = 100
	MaxKeywordsLength    = 500
	MaxLanguageLength    = 35 // BCP 47
	MaxPageSizeLength    = 10 // "letter", "a4", "legal"
	MaxOrientationLength = 10 // "portrait", "landscape"
	MaxThemeLength       = 64
	MaxColorLength       = 20
	MaxPathLength        = 4096
	MaxPagesLimit        = 10000
)

// Config holds all configuration for document generation.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Document DocumentConfig `yaml:"document"`
	Page     PageConfig     `yaml:"page"`
	Footer   FooterConfig   `yaml:"footer"`
	Theme    ThemeConfig    `yaml:"theme"`
	Render   RenderConfig   `yaml:"render"`
	Log      LogConfig      `yaml:"log"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
	DatedName  bool   `yaml:"datedName"`  // {Document-Title}_{YYYY-MM-DD}.pdf
	HTML       bool   `yaml:"html"`       // Also write the HTML rendering
}

// DocumentConfig defines the header band and PDF metadata.
type DocumentConfig struct {
	Title    string `yaml:"title"`    // Optional - auto: first H1 → filename
	Subtitle string `yaml:"subtitle"` // Optional
	Date     string `yaml:"date"`     // "auto", "auto:FORMAT", "YYYY-MM-DD" or free text
	Author   string `yaml:"author"`
	Subject  string `yaml:"subject"`
	Keywords string `yaml:"keywords"`
	Language string `yaml:"language"` // BCP 47, used by the HTML rendering
}

// PageConfig defines page geometry.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal" (default: "letter")
	Orientation string  `yaml:"orientation"` // "portrait", "landscape" (default: "portrait")
	Margin      float64 `yaml:"margin"`      // points (0 = theme margin)
}

// FooterConfig defines page footer options.
type FooterConfig struct {
	Text string `yaml:"text"` // Left-aligned text next to the page label
}

// ThemeConfig selects the style registry.
type ThemeConfig struct {
	Name       string `yaml:"name"`       // Theme name or path to a theme file
	TitleColor string `yaml:"titleColor"` // Palette key for the header band
	BasePath   string `yaml:"basePath"`   // Directory with themes/*.yaml (empty = embedded only)
}

// RenderConfig selects the backend and its limits.
type RenderConfig struct {
	Backend  string `yaml:"backend"`  // "fpdf" (default) or "chrome"
	MaxPages int    `yaml:"maxPages"` // 0 = unlimited
	Timeout  string `yaml:"timeout"`  // Go duration, e.g. "30s"
}

// LogConfig configures the rotating log file.
type LogConfig struct {
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
	Compress   bool   `yaml:"compress"`
}

// TimeoutDuration parses Render.Timeout. An empty value returns zero.
func (r RenderConfig) TimeoutDuration() (time.Duration, error) {
	if r.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(r.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: render.timeout %q", ErrInvalidValue, r.Timeout)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: render.timeout must not be negative", ErrInvalidValue)
	}
	return d, nil
}

// Validate checks field lengths and numeric ranges. Called automatically by
// LoadConfig, but available for callers who construct Config manually.
// Unknown page sizes, orientations and palette keys are not errors: the
// converter falls back to defaults for them.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"document.title", c.Document.Title, MaxTitleLength},
		{"document.subtitle", c.Document.Subtitle, MaxSubtitleLength},
		{"document.date", c.Document.Date, MaxDateLength},
		{"document.author", c.Document.Author, MaxNameLength},
		{"document.subject", c.Document.Subject, MaxTextLength},
		{"document.keywords", c.Document.Keywords, MaxKeywordsLength},
		{"document.language", c.Document.Language, MaxLanguageLength},
		{"page.size", c.Page.Size, MaxPageSizeLength},
		{"page.orientation", c.Page.Orientation, MaxOrientationLength},
		{"footer.text", c.Footer.Text, MaxTextLength},
		{"theme.name", c.Theme.Name, MaxPathLength},
		{"theme.titleColor", c.Theme.TitleColor, MaxColorLength},
		{"theme.basePath", c.Theme.BasePath, MaxPathLength},
		{"log.file", c.Log.File, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}
	if !fileutil.IsFilePath(c.Theme.Name) {
		if err := validateFieldLength("theme.name", c.Theme.Name, MaxThemeLength); err != nil {
			return err
		}
	}

	if c.Page.Margin < 0 {
		return fmt.Errorf("%w: page.margin must not be negative, got %.2f", ErrInvalidValue, c.Page.Margin)
	}

	switch strings.ToLower(c.Render.Backend) {
	case "", "fpdf", "chrome":
	default:
		return fmt.Errorf("%w: render.backend %q (must be fpdf or chrome)", ErrInvalidValue, c.Render.Backend)
	}
	if c.Render.MaxPages < 0 || c.Render.MaxPages > MaxPagesLimit {
		return fmt.Errorf("%w: render.maxPages must be between 0 and %d, got %d", ErrInvalidValue, MaxPagesLimit, c.Render.MaxPages)
	}
	if _, err := c.Render.TimeoutDuration(); err != nil {
		return err
	}

	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("%w: log rotation settings must not be negative", ErrInvalidValue)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: letter portrait pages, the
// default theme and the fpdf backend.
func DefaultConfig() *Config {
	return &Config{
		Page:   PageConfig{Size: "letter", Orientation: "portrait"},
		Theme:  ThemeConfig{Name: "default"},
		Render: RenderConfig{Backend: "fpdf"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists where a config name is looked up, in order.
// Tries extensions .yaml then .yml, in the current directory then in
// ~/.config/go-corridorpdf/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, DirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
