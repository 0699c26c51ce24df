package pipeline

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark/parser"

	"github.com/alnah/go-corridorpdf/block"
)

// TabWidth is the number of leading whitespace columns per list indent
// level. A tab counts as one full level.
const TabWidth = 2

var (
	headingLine = regexp.MustCompile(`^(#+)[ \t]+(.*)$`)
	closingHash = regexp.MustCompile(`[ \t]+#+$`)
	bulletLine  = regexp.MustCompile(`^([ \t]*)[-*][ \t]+(.*)$`)
	orderedLine = regexp.MustCompile(`^([ \t]*)(\d{1,9}[.)])[ \t]+(.*)$`)
	fenceOpen   = regexp.MustCompile("^(`{3,}|~{3,})[ \t]*([^`\\s]*)")
)

// Normalize parses text written in the supported markdown subset into an
// ordered block sequence. It never fails: malformed constructs degrade to
// plain paragraphs and empty input yields an empty sequence.
func Normalize(text string) []block.Block {
	n := &normalizer{
		lines:  strings.Split(Preprocess(text), "\n"),
		inline: newInlineParser(),
	}
	return n.run()
}

type normalizer struct {
	lines  []string
	pos    int
	inline parser.Parser
	out    []block.Block
}

func (n *normalizer) run() []block.Block {
	for n.pos < len(n.lines) {
		raw := n.lines[n.pos]
		line := strings.TrimSpace(raw)

		switch {
		case line == "":
			n.pos++
		case fenceOpen.MatchString(line):
			n.fence(line)
		case headingLine.MatchString(line):
			n.heading(line)
		case n.tableStart():
			n.table()
		case isRule(line):
			n.out = append(n.out, block.Rule{})
			n.pos++
		case bulletLine.MatchString(raw):
			m := bulletLine.FindStringSubmatch(raw)
			n.bullet(m[1], "", m[2])
		case orderedLine.MatchString(raw):
			m := orderedLine.FindStringSubmatch(raw)
			n.bullet(m[1], m[2], m[3])
		default:
			n.paragraph(line)
		}
	}
	return n.out
}

func (n *normalizer) heading(line string) {
	m := headingLine.FindStringSubmatch(line)
	text := strings.TrimSpace(closingHash.ReplaceAllString(m[2], ""))
	if text == strings.Repeat("#", len(text)) {
		text = ""
	}
	n.out = append(n.out, block.Heading{
		Level: block.ClampLevel(len(m[1])),
		Text:  block.PlainText(parseInline(n.inline, text)),
	})
	n.pos++
}

func (n *normalizer) bullet(indent, marker, text string) {
	n.out = append(n.out, block.BulletItem{
		Spans:  parseInline(n.inline, strings.TrimSpace(text)),
		Indent: indentLevel(indent),
		Marker: marker,
	})
	n.pos++
}

func (n *normalizer) paragraph(line string) {
	if spans := parseInline(n.inline, line); len(spans) > 0 {
		n.out = append(n.out, block.Paragraph{Spans: spans})
	}
	n.pos++
}

// fence captures a fenced code block up to the closing fence or the end of
// input.
func (n *normalizer) fence(line string) {
	m := fenceOpen.FindStringSubmatch(line)
	marker := m[1]
	cb := block.CodeBlock{Language: strings.ToLower(m[2])}
	n.pos++
	for n.pos < len(n.lines) {
		raw := n.lines[n.pos]
		n.pos++
		if isFenceClose(strings.TrimSpace(raw), marker) {
			break
		}
		cb.Lines = append(cb.Lines, raw)
	}
	n.out = append(n.out, cb)
}

func isFenceClose(line, marker string) bool {
	if len(line) < len(marker) || line[0] != marker[0] {
		return false
	}
	return strings.Trim(line, marker[:1]) == ""
}

// indentLevel converts leading whitespace into a list nesting level.
func indentLevel(ws string) int {
	cols := 0
	for _, r := range ws {
		if r == '\t' {
			cols += TabWidth
			continue
		}
		cols++
	}
	return cols / TabWidth
}

// isRule reports whether line is a thematic break: three or more of the
// same -, * or _ character, optionally separated by spaces.
func isRule(line string) bool {
	var mark rune
	count := 0
	for _, r := range line {
		switch r {
		case ' ', '\t':
			continue
		case '-', '*', '_':
			if mark == 0 {
				mark = r
			}
			if r != mark {
				return false
			}
			count++
		default:
			return false
		}
	}
	return count >= 3
}

// FirstTitle returns the text of the first level-1 heading, or "".
func FirstTitle(blocks []block.Block) string {
	for _, b := range blocks {
		if h, ok := b.(block.Heading); ok && h.Level == 1 && h.Text != "" {
			return h.Text
		}
	}
	return ""
}
