package style

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alnah/go-corridorpdf/internal/yamlutil"
)

// ErrInvalidColor is returned by ParseHex for malformed color strings.
var ErrInvalidColor = errors.New("invalid hex color")

// ErrInvalidTheme is returned when theme YAML cannot be decoded.
var ErrInvalidTheme = errors.New("invalid theme")

// Theme is the YAML form of a registry. Every field is optional; missing or
// malformed values fall back to the default theme.
type Theme struct {
	Name        string            `yaml:"name"`
	Palette     map[string]string `yaml:"palette"`
	Family      string            `yaml:"family"`
	Mono        string            `yaml:"mono"`
	BodySize    float64           `yaml:"bodySize"`
	Headings    []float64         `yaml:"headings"`
	TitleSize   float64           `yaml:"titleSize"`
	LineSpacing float64           `yaml:"lineSpacing"`
	Margin      float64           `yaml:"margin"`
	CodeStyle   string            `yaml:"codeStyle"`
}

var defaultPalette = map[string]Color{
	ColorPrimary:        {R: 0x1F, G: 0x3A, B: 0x5F},
	ColorSecondary:      {R: 0x4A, G: 0x6F, B: 0x8A},
	ColorAccent:         {R: 0x2E, G: 0x86, B: 0xAB},
	ColorSuccess:        {R: 0x2E, G: 0x7D, B: 0x32},
	ColorWarning:        {R: 0xED, G: 0x8B, B: 0x00},
	ColorDanger:         {R: 0xC6, G: 0x28, B: 0x28},
	ColorInfo:           {R: 0x02, G: 0x77, B: 0xBD},
	ColorText:           {R: 0x21, G: 0x21, B: 0x21},
	ColorMuted:          {R: 0x75, G: 0x75, B: 0x75},
	ColorInverse:        {R: 0xFF, G: 0xFF, B: 0xFF},
	ColorWhite:          {R: 0xFF, G: 0xFF, B: 0xFF},
	ColorLightGray:      {R: 0xF2, G: 0xF4, B: 0xF7},
	ColorBorder:         {R: 0xD0, G: 0xD7, B: 0xDE},
	ColorCode:           {R: 0xB0, G: 0x3A, B: 0x2E},
	ColorCodeBackground: {R: 0xF6, G: 0xF8, B: 0xFA},
}

var defaultFonts = Fonts{
	Family:      FamilySans,
	Mono:        FamilyMono,
	Body:        10,
	Headings:    [3]float64{18, 14, 12},
	Title:       22,
	Subtitle:    12,
	Footer:      8,
	Table:       9,
	Badge:       8,
	StatValue:   16,
	Code:        9,
	LineSpacing: 1.4,
}

const (
	defaultName      = "default"
	defaultCodeStyle = "github"
)

// minFontSize keeps every derived size, and so every line height, positive.
const minFontSize = 4.0

// Default returns the built-in registry.
func Default() *Registry {
	return FromTheme(Theme{})
}

// ParseTheme decodes theme YAML and builds a registry from it.
func ParseTheme(data []byte) (*Registry, error) {
	var t Theme
	if err := yamlutil.UnmarshalStrict(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTheme, err)
	}
	return FromTheme(t), nil
}

// FromTheme builds a registry from t, filling every gap from the default
// theme. It never fails.
func FromTheme(t Theme) *Registry {
	palette := make(map[string]Color, len(defaultPalette)+len(t.Palette))
	for k, v := range defaultPalette {
		palette[k] = v
	}
	for k, v := range t.Palette {
		if c, err := ParseHex(v); err == nil {
			palette[k] = c
		}
	}

	fonts := defaultFonts
	if t.Family != "" {
		fonts.Family = CoreFamily(t.Family)
	}
	if t.Mono != "" {
		fonts.Mono = CoreFamily(t.Mono)
	}
	if t.BodySize > 0 {
		fonts.Body = max(t.BodySize, minFontSize)
		fonts.Table = max(t.BodySize-1, minFontSize)
		fonts.Code = max(t.BodySize-1, minFontSize)
	}
	for i := 0; i < len(t.Headings) && i < len(fonts.Headings); i++ {
		if t.Headings[i] > 0 {
			fonts.Headings[i] = max(t.Headings[i], minFontSize)
		}
	}
	if t.TitleSize > 0 {
		fonts.Title = max(t.TitleSize, minFontSize)
	}
	if t.LineSpacing >= 1 {
		fonts.LineSpacing = t.LineSpacing
	}

	r := &Registry{
		name:    defaultName,
		palette: palette,
		fonts:   fonts,
		margin:  DefaultMargin,
		code:    defaultCodeStyle,
	}
	if t.Name != "" {
		r.name = t.Name
	}
	if t.Margin > 0 {
		r.margin = t.Margin
	}
	if t.CodeStyle != "" {
		r.code = t.CodeStyle
	}
	return r
}

// ParseHex parses "#RRGGBB", "RRGGBB" or the short "#RGB" form.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex formats c as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
