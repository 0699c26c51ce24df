package pipeline

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-corridorpdf/block"
)

// newInlineParser returns a goldmark parser restricted to paragraphs with
// code spans and emphasis. Links, raw HTML and autolinks stay literal.
func newInlineParser() parser.Parser {
	return parser.NewParser(
		parser.WithBlockParsers(
			util.Prioritized(parser.NewParagraphParser(), 100),
		),
		parser.WithInlineParsers(
			util.Prioritized(parser.NewCodeSpanParser(), 100),
			util.Prioritized(parser.NewEmphasisParser(), 200),
		),
	)
}

// ParseInline splits one line of text into styled spans. `code` spans are
// literal, **strong** spans are bold, and single-delimiter emphasis keeps its
// content unstyled. Unmatched delimiters stay in the text as written.
func ParseInline(line string) []block.Span {
	return parseInline(newInlineParser(), line)
}

func parseInline(p parser.Parser, line string) []block.Span {
	if line == "" {
		return nil
	}
	src := []byte(line)
	doc := p.Parse(text.NewReader(src))

	var spans []block.Span
	for para := doc.FirstChild(); para != nil; para = para.NextSibling() {
		if para != doc.FirstChild() {
			spans = append(spans, block.Span{Text: " "})
		}
		spans = collectSpans(spans, para, src, false)
	}
	return block.MergeSpans(spans)
}

func collectSpans(spans []block.Span, n ast.Node, src []byte, bold bool) []block.Span {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.CodeSpan:
			spans = append(spans, block.Span{Text: rawText(node, src), Bold: bold, Code: true})
		case *ast.Emphasis:
			spans = collectSpans(spans, node, src, bold || node.Level >= 2)
		case *ast.Text:
			value := string(util.UnescapePunctuations(node.Segment.Value(src)))
			if node.SoftLineBreak() || node.HardLineBreak() {
				value += " "
			}
			spans = append(spans, block.Span{Text: value, Bold: bold})
		case *ast.String:
			spans = append(spans, block.Span{Text: string(node.Value), Bold: bold})
		default:
			spans = collectSpans(spans, node, src, bold)
		}
	}
	return spans
}

// rawText returns the literal content of a code span.
func rawText(n ast.Node, src []byte) string {
	var buf []byte
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			buf = append(buf, node.Segment.Value(src)...)
		case *ast.String:
			buf = append(buf, node.Value...)
		}
	}
	return string(buf)
}
