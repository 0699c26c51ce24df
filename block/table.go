package block

// Table is a grid of plain-text cells under a header row.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Columns returns the column count the table renders with.
// A table without headers takes its width from the widest row.
func (t Table) Columns() int {
	if len(t.Headers) > 0 {
		return len(t.Headers)
	}
	n := 0
	for _, r := range t.Rows {
		if len(r) > n {
			n = len(r)
		}
	}
	return n
}

// Normalize returns a copy where every row has exactly Columns() cells.
// Short rows are padded with empty cells and long rows are truncated.
// A headerless table gets empty header labels.
func (t Table) Normalize() Table {
	cols := t.Columns()
	out := Table{
		Headers: fitRow(t.Headers, cols),
		Rows:    make([][]string, len(t.Rows)),
	}
	for i, r := range t.Rows {
		out.Rows[i] = fitRow(r, cols)
	}
	return out
}

// IsEmpty reports whether the table has nothing to draw.
func (t Table) IsEmpty() bool {
	return t.Columns() == 0
}

func fitRow(row []string, cols int) []string {
	out := make([]string, cols)
	copy(out, row)
	return out
}
