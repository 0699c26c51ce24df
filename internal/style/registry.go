// Package style holds the immutable Style Registry: palette, font hierarchy,
// and margins. A Registry is built once per theme and passed explicitly to
// each document generation; it is never mutated after construction, so one
// value may back any number of concurrent generations.
package style

import (
	"sort"
	"strings"
)

// Palette keys every registry resolves.
const (
	ColorPrimary        = "primary"
	ColorSecondary      = "secondary"
	ColorAccent         = "accent"
	ColorSuccess        = "success"
	ColorWarning        = "warning"
	ColorDanger         = "danger"
	ColorInfo           = "info"
	ColorText           = "text"
	ColorMuted          = "muted"
	ColorInverse        = "inverse"
	ColorWhite          = "white"
	ColorLightGray      = "lightGray"
	ColorBorder         = "border"
	ColorCode           = "code"
	ColorCodeBackground = "codeBackground"
)

// Core PDF font families. Anything else falls back to FamilySans.
const (
	FamilySans  = "Helvetica"
	FamilySerif = "Times"
	FamilyMono  = "Courier"
)

// DefaultMargin is the page margin in points when a theme sets none.
const DefaultMargin = 40.0

// Color is an RGB triple.
type Color struct {
	R, G, B uint8
}

// Font selects a core font face at a point size.
type Font struct {
	Family string
	Bold   bool
	Size   float64
}

// Fonts is the type hierarchy of a registry. Sizes are in points.
type Fonts struct {
	Family      string
	Mono        string
	Body        float64
	Headings    [3]float64
	Title       float64
	Subtitle    float64
	Footer      float64
	Table       float64
	Badge       float64
	StatValue   float64
	Code        float64
	LineSpacing float64
}

// Registry is the read-only style configuration of one theme.
type Registry struct {
	name    string
	palette map[string]Color
	fonts   Fonts
	margin  float64
	code    string
}

// Name returns the theme name the registry was built from.
func (r *Registry) Name() string { return r.name }

// Margin returns the default page margin in points.
func (r *Registry) Margin() float64 { return r.margin }

// Fonts returns a copy of the font hierarchy.
func (r *Registry) Fonts() Fonts { return r.fonts }

// CodeStyle returns the syntax highlighting style name for code blocks.
func (r *Registry) CodeStyle() string { return r.code }

// Lookup returns the palette entry for key.
func (r *Registry) Lookup(key string) (Color, bool) {
	c, ok := r.palette[key]
	return c, ok
}

// Color returns the palette entry for key, falling back to primary for
// unknown keys. Never fails.
func (r *Registry) Color(key string) Color {
	if c, ok := r.palette[key]; ok {
		return c
	}
	return r.palette[ColorPrimary]
}

// Keys returns the palette keys in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.palette))
	for k := range r.palette {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// BodyFont returns the paragraph font.
func (r *Registry) BodyFont(bold bool) Font {
	return Font{Family: r.fonts.Family, Bold: bold, Size: r.fonts.Body}
}

// CodeFont returns the monospace font used for inline code and code blocks.
func (r *Registry) CodeFont() Font {
	return Font{Family: r.fonts.Mono, Size: r.fonts.Code}
}

// HeadingFont returns the font for a heading level; levels outside 1..3 are
// clamped.
func (r *Registry) HeadingFont(level int) Font {
	if level < 1 {
		level = 1
	}
	if level > len(r.fonts.Headings) {
		level = len(r.fonts.Headings)
	}
	return Font{Family: r.fonts.Family, Bold: true, Size: r.fonts.Headings[level-1]}
}

// TitleFont returns the header band title font.
func (r *Registry) TitleFont() Font {
	return Font{Family: r.fonts.Family, Bold: true, Size: r.fonts.Title}
}

// SubtitleFont returns the header band subtitle font.
func (r *Registry) SubtitleFont() Font {
	return Font{Family: r.fonts.Family, Size: r.fonts.Subtitle}
}

// FooterFont returns the footer font.
func (r *Registry) FooterFont() Font {
	return Font{Family: r.fonts.Family, Size: r.fonts.Footer}
}

// TableFont returns the table cell font.
func (r *Registry) TableFont(bold bool) Font {
	return Font{Family: r.fonts.Family, Bold: bold, Size: r.fonts.Table}
}

// BadgeFont returns the badge and stats card label font.
func (r *Registry) BadgeFont(bold bool) Font {
	return Font{Family: r.fonts.Family, Bold: bold, Size: r.fonts.Badge}
}

// StatValueFont returns the stats card value font.
func (r *Registry) StatValueFont() Font {
	return Font{Family: r.fonts.Family, Bold: true, Size: r.fonts.StatValue}
}

// LineHeight returns the vertical advance for one line set in f.
func (r *Registry) LineHeight(f Font) float64 {
	return f.Size * r.fonts.LineSpacing
}

// CoreFamily maps a family name onto one of the PDF core families.
func CoreFamily(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "helvetica", "arial", "sans", "sans-serif":
		return FamilySans
	case "times", "times-roman", "serif":
		return FamilySerif
	case "courier", "mono", "monospace":
		return FamilyMono
	}
	return FamilySans
}
