package assets

// Loader defines the contract for loading theme definitions.
type Loader interface {
	// LoadTheme loads theme YAML by name (without .yaml extension).
	// Returns ErrThemeNotFound if the theme doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTheme(name string) ([]byte, error)

	// Themes lists the theme names the loader can serve.
	Themes() ([]string, error)
}
