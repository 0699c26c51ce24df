package pipeline

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Precompiled regex patterns.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)
)

const byteOrderMark = "\ufeff"

// Preprocess prepares raw text for line scanning: the byte order mark is
// dropped, line endings become \n, and text is composed to NFC.
func Preprocess(content string) string {
	content = strings.TrimPrefix(content, byteOrderMark)
	content = normalizeLineEndings(content)
	return norm.NFC.String(content)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
