package main

import (
	"errors"
	"os"

	corridorpdf "github.com/alnah/go-corridorpdf"
	"github.com/alnah/go-corridorpdf/internal/config"
)

// Exit codes for the corridorpdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, theme or limits
	ExitIO      = 3 // File not found, permission denied
	ExitBackend = 4 // PDF backend or browser errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Backend errors (exit 4)
	if errors.Is(err, corridorpdf.ErrBrowserConnect) ||
		errors.Is(err, corridorpdf.ErrPageCreate) ||
		errors.Is(err, corridorpdf.ErrPageLoad) ||
		errors.Is(err, corridorpdf.ErrPDFGeneration) {
		return ExitBackend
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWritePDF) ||
		errors.Is(err, ErrWriteHTML) ||
		errors.Is(err, ErrOutputDir) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoMarkdownFiles) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, corridorpdf.ErrThemeNotFound) ||
		errors.Is(err, corridorpdf.ErrInvalidTheme) ||
		errors.Is(err, corridorpdf.ErrUnknownBackend) ||
		errors.Is(err, corridorpdf.ErrInvalidAssetPath) ||
		errors.Is(err, corridorpdf.ErrPageLimit) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidFlag) {
		return ExitUsage
	}

	return ExitGeneral
}
