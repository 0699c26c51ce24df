package metrics

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// Replacement is written for runes the core fonts cannot encode.
const Replacement = '?'

// ToWinAnsi converts UTF-8 text to the Windows-1252 byte string used by the
// PDF core fonts. Text is composed to NFC first so that decomposed accents
// map onto their precomposed code points.
func ToWinAnsi(s string) string {
	if isASCII(s) {
		return s
	}
	s = norm.NFC.String(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if c, ok := charmap.Windows1252.EncodeRune(r); ok {
			b.WriteByte(c)
			continue
		}
		b.WriteByte(Replacement)
	}
	return b.String()
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
