package assets

import (
	"fmt"

	"github.com/alnah/go-corridorpdf/internal/style"
)

// DefaultThemeName is the name of the built-in theme.
const DefaultThemeName = "default"

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadTheme loads theme YAML by name using the default embedded loader.
// Returns ErrThemeNotFound if the theme does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadTheme(name string) ([]byte, error) {
	return defaultLoader.LoadTheme(name)
}

// LoadRegistry loads the named theme from l and builds a style registry.
func LoadRegistry(l Loader, name string) (*style.Registry, error) {
	data, err := l.LoadTheme(name)
	if err != nil {
		return nil, err
	}
	reg, err := style.ParseTheme(data)
	if err != nil {
		return nil, fmt.Errorf("theme %q: %w", name, err)
	}
	return reg, nil
}
