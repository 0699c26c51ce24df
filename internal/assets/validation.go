package assets

import (
	"fmt"
	"strings"
)

// maxAssetNameLength bounds theme names to something usable as a filename.
const maxAssetNameLength = 64

// ValidateAssetName checks that a theme name is safe for use as a filename.
// Returns ErrInvalidAssetName if the name is empty, too long, starts with a
// hyphen, or contains path separators, dots, or traversal characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > maxAssetNameLength {
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidAssetName, maxAssetNameLength)
	}
	if strings.HasPrefix(name, "-") || strings.ContainsAny(name, "/\\.: ") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
