package main

import (
	"context"
	"errors"

	corridorpdf "github.com/alnah/go-corridorpdf"
	"github.com/alnah/go-corridorpdf/internal/assets"
	"github.com/alnah/go-corridorpdf/internal/config"
	"github.com/alnah/go-corridorpdf/internal/hints"
)

// errorHint returns an actionable hint for err, or "". configName is the
// config the user asked for, used when it could not be found.
func errorHint(err error, cfg *config.Config, configName string) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(configName))
	case errors.Is(err, corridorpdf.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, ErrOutputDir):
		return hints.ForOutputDirectory()
	case errors.Is(err, corridorpdf.ErrThemeNotFound):
		return hints.ForThemeNotFound(availableThemes(cfg))
	case errors.Is(err, corridorpdf.ErrPageLimit) && cfg != nil:
		return hints.ForPageLimit(cfg.Render.MaxPages)
	}
	return ""
}

// availableThemes lists embedded themes plus those under the configured
// theme directory. Errors yield no list.
func availableThemes(cfg *config.Config) []string {
	var basePath string
	if cfg != nil {
		basePath = cfg.Theme.BasePath
	}
	r, err := assets.NewResolver(basePath)
	if err != nil {
		return nil
	}
	names, err := r.Themes()
	if err != nil {
		return nil
	}
	return names
}
