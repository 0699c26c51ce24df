package corridorpdf

import (
	"strings"
	"time"
	"unicode"
)

// fallbackTitle names documents whose title has no usable characters.
const fallbackTitle = "Document"

// Filename builds the artifact name {Document-Title}_{YYYY-MM-DD}.<ext>.
// Whitespace runs in the title become a single '-', characters other than
// letters, digits, '-' and '_' are dropped.
func Filename(title string, date time.Time, ext string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.TrimSpace(title) {
		switch {
		case unicode.IsSpace(r):
			pendingDash = true
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_':
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" {
		name = fallbackTitle
	}

	name += "_" + date.Format("2006-01-02")
	if ext = strings.TrimPrefix(ext, "."); ext != "" {
		name += "." + ext
	}
	return name
}
