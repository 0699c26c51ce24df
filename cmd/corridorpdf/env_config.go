package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-corridorpdf/internal/config"
)

// envPrefix marks the environment variables read by the CLI.
const envPrefix = "CORRIDORPDF_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // CORRIDORPDF_CONFIG: config file name or path
	Theme      string        // CORRIDORPDF_THEME: theme name or path
	Backend    string        // CORRIDORPDF_BACKEND: fpdf, chrome
	Timeout    time.Duration // CORRIDORPDF_TIMEOUT: chrome rendering timeout

	InputDir   string // CORRIDORPDF_INPUT_DIR: default input directory
	OutputDir  string // CORRIDORPDF_OUTPUT_DIR: default output directory
	PageSize   string // CORRIDORPDF_PAGE_SIZE: letter, a4, legal
	FooterText string // CORRIDORPDF_FOOTER_TEXT: footer text
	Workers    int    // CORRIDORPDF_WORKERS: parallel workers
}

// knownEnvVars lists valid CORRIDORPDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"CORRIDORPDF_CONFIG":      true,
	"CORRIDORPDF_THEME":       true,
	"CORRIDORPDF_BACKEND":     true,
	"CORRIDORPDF_TIMEOUT":     true,
	"CORRIDORPDF_INPUT_DIR":   true,
	"CORRIDORPDF_OUTPUT_DIR":  true,
	"CORRIDORPDF_PAGE_SIZE":   true,
	"CORRIDORPDF_FOOTER_TEXT": true,
	"CORRIDORPDF_WORKERS":     true,
	"CORRIDORPDF_CONTAINER":   true, // read by doctor
}

// loadEnvConfig reads configuration from environment variables.
// Malformed timeouts and worker counts are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("CORRIDORPDF_CONFIG"),
		Theme:      os.Getenv("CORRIDORPDF_THEME"),
		Backend:    os.Getenv("CORRIDORPDF_BACKEND"),
		InputDir:   os.Getenv("CORRIDORPDF_INPUT_DIR"),
		OutputDir:  os.Getenv("CORRIDORPDF_OUTPUT_DIR"),
		PageSize:   os.Getenv("CORRIDORPDF_PAGE_SIZE"),
		FooterText: os.Getenv("CORRIDORPDF_FOOTER_TEXT"),
	}

	if timeout := os.Getenv("CORRIDORPDF_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := os.Getenv("CORRIDORPDF_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// unknownEnvVars returns the unrecognized CORRIDORPDF_* variable names.
func unknownEnvVars(environ []string) []string {
	var unknown []string
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// warnUnknownEnvVars writes a warning per unrecognized CORRIDORPDF_* variable.
// Helps catch typos like CORRIDORPDF_THEMES instead of CORRIDORPDF_THEME.
func warnUnknownEnvVars(w io.Writer) {
	for _, name := range unknownEnvVars(os.Environ()) {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables replace file values; flags are applied afterwards by
// mergeFlags, giving: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Theme != "" {
		cfg.Theme.Name = env.Theme
	}
	if env.Backend != "" {
		cfg.Render.Backend = env.Backend
	}
	if env.Timeout > 0 {
		cfg.Render.Timeout = env.Timeout.String()
	}
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.PageSize != "" {
		cfg.Page.Size = env.PageSize
	}
	if env.FooterText != "" {
		cfg.Footer.Text = env.FooterText
	}
}
