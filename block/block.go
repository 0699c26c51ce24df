// Package block defines the semantic content blocks consumed by the layout
// pipeline. Blocks are produced by the markdown normalizer or built directly
// by callers that already hold structured content (dashboards, tabular
// exports).
//
// Block is a closed set: only the types declared in this package implement it.
package block

// Heading levels supported by the renderer. Deeper levels collapse to
// MaxHeadingLevel.
const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 3
)

// Block is one semantic unit of document content.
type Block interface {
	isBlock()
}

// Span is a run of inline text sharing one style.
type Span struct {
	Text string
	Bold bool
	Code bool
}

// Heading is a section title.
type Heading struct {
	Level int
	Text  string
}

// Paragraph is a run of styled inline text.
type Paragraph struct {
	Spans []Span
}

// BulletItem is one list entry. Marker is empty for unordered items and holds
// the literal marker ("1.", "2)") for ordered ones.
type BulletItem struct {
	Spans  []Span
	Indent int
	Marker string
}

// Badge is a small colored label. Color is a palette key.
type Badge struct {
	Label string
	Color string
}

// StatsCard is a labelled metric box. Color is a palette key.
type StatsCard struct {
	Label string
	Value string
	Color string
}

// CodeBlock is a fenced block of preformatted text.
type CodeBlock struct {
	Language string
	Lines    []string
}

// Rule is a horizontal separator.
type Rule struct{}

func (Heading) isBlock()    {}
func (Paragraph) isBlock()  {}
func (BulletItem) isBlock() {}
func (Table) isBlock()      {}
func (Badge) isBlock()      {}
func (StatsCard) isBlock()  {}
func (CodeBlock) isBlock()  {}
func (Rule) isBlock()       {}

// ClampLevel maps any heading level onto the supported range.
func ClampLevel(level int) int {
	if level < MinHeadingLevel {
		return MinHeadingLevel
	}
	if level > MaxHeadingLevel {
		return MaxHeadingLevel
	}
	return level
}

// PlainText concatenates span text, dropping styling.
func PlainText(spans []Span) string {
	switch len(spans) {
	case 0:
		return ""
	case 1:
		return spans[0].Text
	}
	n := 0
	for _, s := range spans {
		n += len(s.Text)
	}
	buf := make([]byte, 0, n)
	for _, s := range spans {
		buf = append(buf, s.Text...)
	}
	return string(buf)
}

// MergeSpans joins adjacent spans that share a style and drops empty ones.
func MergeSpans(spans []Span) []Span {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Bold == s.Bold && out[n-1].Code == s.Code {
			out[n-1].Text += s.Text
			continue
		}
		out = append(out, s)
	}
	return out
}
