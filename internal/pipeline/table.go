package pipeline

import (
	"strings"

	"github.com/alnah/go-corridorpdf/block"
)

// tableStart reports whether the current line opens a table: a pipe row
// immediately followed by a separator row.
func (n *normalizer) tableStart() bool {
	if n.pos+1 >= len(n.lines) {
		return false
	}
	return isPipeRow(strings.TrimSpace(n.lines[n.pos])) &&
		isSeparatorRow(strings.TrimSpace(n.lines[n.pos+1]))
}

// table captures the header, skips the separator, and collects body rows
// until a blank or non-pipe line.
func (n *normalizer) table() {
	t := block.Table{Headers: n.cells(strings.TrimSpace(n.lines[n.pos]))}
	n.pos += 2
	for n.pos < len(n.lines) {
		line := strings.TrimSpace(n.lines[n.pos])
		if !isPipeRow(line) {
			break
		}
		t.Rows = append(t.Rows, n.cells(line))
		n.pos++
	}
	n.out = append(n.out, t.Normalize())
}

// cells splits a pipe row and strips inline markup from each cell.
func (n *normalizer) cells(line string) []string {
	raw := splitPipeRow(line)
	out := make([]string, len(raw))
	for i, c := range raw {
		out[i] = block.PlainText(parseInline(n.inline, c))
	}
	return out
}

func isPipeRow(line string) bool {
	return len(line) > 1 && line[0] == '|'
}

// isSeparatorRow matches |---|:--:|--:| style delimiter rows.
func isSeparatorRow(line string) bool {
	if !isPipeRow(line) {
		return false
	}
	cells := splitPipeRow(line)
	if len(cells) == 0 {
		return false
	}
	for _, c := range cells {
		c = strings.TrimPrefix(strings.TrimSuffix(c, ":"), ":")
		if c == "" || strings.Trim(c, "-") != "" {
			return false
		}
	}
	return true
}

// splitPipeRow splits a row on unescaped pipes. The outer pipes are
// optional on the right; \| yields a literal pipe inside a cell.
func splitPipeRow(line string) []string {
	line = strings.TrimPrefix(line, "|")
	if strings.HasSuffix(line, "|") && !strings.HasSuffix(line, `\|`) {
		line = line[:len(line)-1]
	}

	var cells []string
	var cur strings.Builder
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '\\' && i+1 < len(line) && line[i+1] == '|' {
			cur.WriteByte('|')
			i++
			continue
		}
		if c == '|' {
			cells = append(cells, strings.TrimSpace(cur.String()))
			cur.Reset()
			continue
		}
		cur.WriteByte(c)
	}
	return append(cells, strings.TrimSpace(cur.String()))
}
