// Package dateutil resolves the document date shown in page footers and used
// for dated output file names.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength bounds user supplied format strings.
const MaxDateFormatLength = 50

// DefaultDateFormat is used for a bare "auto".
const DefaultDateFormat = "YYYY-MM-DD"

// isoLayout is the Go layout for DefaultDateFormat.
const isoLayout = "2006-01-02"

const autoKeyword = "auto"

// tokens maps format tokens to Go layout elements, longest first so that
// "MMMM" wins over "MM".
var tokens = [...]struct{ token, layout string }{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets are named formats accepted after "auto:".
var DatePresets = map[string]string{
	"iso":      DefaultDateFormat,
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// ParseDateFormat translates a token format (YYYY, YY, MMMM, MMM, MM, M, DD,
// D) into a Go time layout. Text inside [brackets] and any other character
// is copied literally.
func ParseDateFormat(format string) (string, error) {
	switch {
	case format == "":
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	case len(format) > MaxDateFormatLength:
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var out strings.Builder
	for rest := format; rest != ""; {
		if literal, ok := strings.CutPrefix(rest, "["); ok {
			inner, after, closed := strings.Cut(literal, "]")
			if !closed {
				pos := len(format) - len(rest)
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, pos)
			}
			out.WriteString(inner)
			rest = after
			continue
		}
		layout, n := matchToken(rest)
		out.WriteString(layout)
		rest = rest[n:]
	}
	return out.String(), nil
}

// matchToken returns the layout for the token at the start of s and its
// length, or the first byte of s as a literal.
func matchToken(s string) (string, int) {
	for _, t := range tokens {
		if strings.HasPrefix(s, t.token) {
			return t.layout, len(t.token)
		}
	}
	return s[:1], 1
}

// ResolveDate formats t for "auto" and "auto:FORMAT" values, where FORMAT is
// a token format or a preset name. Other values are returned unchanged.
func ResolveDate(value string, t time.Time) (string, error) {
	if len(value) < len(autoKeyword) || !strings.EqualFold(value[:len(autoKeyword)], autoKeyword) {
		return value, nil
	}

	format := DefaultDateFormat
	if suffix := value[len(autoKeyword):]; suffix != "" {
		spec, ok := strings.CutPrefix(suffix, ":")
		switch {
		case !ok:
			return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
		case spec == "":
			return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
		}
		format = spec
		if preset, ok := DatePresets[strings.ToLower(spec)]; ok {
			format = preset
		}
	}

	layout, err := ParseDateFormat(format)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}

// DocumentDate resolves a configured document date. It returns the instant
// used for metadata and dated file names, and the text shown in the footer.
//   - "" → now, no text
//   - "auto", "auto:FORMAT" → now, formatted as ResolveDate does
//   - "2024-03-01" → that day, text unchanged
//   - any other value → now, text unchanged
func DocumentDate(value string, now time.Time) (time.Time, string, error) {
	if value == "" {
		return now, "", nil
	}
	text, err := ResolveDate(value, now)
	if err != nil {
		return time.Time{}, "", err
	}
	if t, err := time.ParseInLocation(isoLayout, value, now.Location()); err == nil {
		return t, value, nil
	}
	return now, text, nil
}
