package render

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-corridorpdf/block"
	"github.com/alnah/go-corridorpdf/internal/layout"
	"github.com/alnah/go-corridorpdf/internal/style"
)

const (
	letterWidth  = 612.0
	letterHeight = 792.0
)

func assemble(t *testing.T, blocks []block.Block, opts Options) *layout.Document {
	t.Helper()
	doc, err := Assemble(style.Default(), layout.ApproxMetrics{}, Input{
		Title:    "Corridor Report",
		Subtitle: "I-80 westbound",
		Blocks:   blocks,
		Options:  opts,
		Width:    letterWidth,
		Height:   letterHeight,
	})
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	return doc
}

func contentOps(p layout.Page) []layout.Op {
	var out []layout.Op
	for _, op := range p.Ops {
		if op.Source() >= 0 {
			out = append(out, op)
		}
	}
	return out
}

func opsBySource(p layout.Page, source int) []layout.Op {
	var out []layout.Op
	for _, op := range p.Ops {
		if op.Source() == source {
			out = append(out, op)
		}
	}
	return out
}

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("corridor ", n))
}

func para(text string) block.Paragraph {
	return block.Paragraph{Spans: []block.Span{{Text: text}}}
}

// ---------------------------------------------------------------------------
// TestAssemble_EmptyBody - Header and footer only
// ---------------------------------------------------------------------------

func TestAssemble_EmptyBody(t *testing.T) {
	t.Parallel()

	doc := assemble(t, nil, Options{FooterText: "Confidential"})

	if doc.PageCount() != 1 {
		t.Fatalf("PageCount() = %d, want 1", doc.PageCount())
	}
	page := doc.Pages[0]
	if n := len(contentOps(page)); n != 0 {
		t.Errorf("content ops = %d, want 0", n)
	}
	if len(opsBySource(page, layout.SourceHeader)) == 0 {
		t.Error("missing header ops")
	}

	var texts []string
	for _, op := range opsBySource(page, layout.SourceFooter) {
		if txt, ok := op.(layout.TextOp); ok {
			texts = append(texts, txt.Text)
		}
	}
	if diff := cmp.Diff([]string{"Page 1 of 1", "Confidential"}, texts); diff != "" {
		t.Errorf("footer texts mismatch (-want +got):\n%s", diff)
	}
}

func TestAssemble_HeaderBand(t *testing.T) {
	t.Parallel()

	reg := style.Default()
	tests := []struct {
		name       string
		titleColor string
		want       style.Color
	}{
		{name: "default primary", titleColor: "", want: reg.Color(style.ColorPrimary)},
		{name: "palette key", titleColor: style.ColorDanger, want: reg.Color(style.ColorDanger)},
		{name: "unknown key falls back", titleColor: "ultraviolet", want: reg.Color(style.ColorPrimary)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := assemble(t, nil, Options{TitleColor: tt.titleColor})
			header := opsBySource(doc.Pages[0], layout.SourceHeader)
			band, ok := header[0].(layout.RectOp)
			if !ok {
				t.Fatalf("first header op = %T, want RectOp", header[0])
			}
			if band.Fill != tt.want || band.W != letterWidth || band.X != 0 || band.Y != 0 {
				t.Errorf("band = %+v, want full-width fill %+v", band, tt.want)
			}

			var texts []string
			for _, op := range header[1:] {
				texts = append(texts, op.(layout.TextOp).Text)
			}
			if diff := cmp.Diff([]string{"Corridor Report", "I-80 westbound"}, texts); diff != "" {
				t.Errorf("header texts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestAssemble_Order - Content appears once, in block order
// ---------------------------------------------------------------------------

func mixedBlocks() []block.Block {
	var blocks []block.Block
	for i := 0; i < 12; i++ {
		blocks = append(blocks,
			block.Heading{Level: 1 + i%3, Text: fmt.Sprintf("Section %d", i)},
			para(words(40+i*7)),
			block.BulletItem{Spans: []block.Span{{Text: "item "}, {Text: "bold", Bold: true}}, Indent: i % 3},
			block.Table{Headers: []string{"Route", "Status"}, Rows: [][]string{{"I-80", "open"}, {"US-30", "closed"}}},
			block.Badge{Label: "ACTIVE", Color: style.ColorSuccess},
			block.StatsCard{Label: "Incidents", Value: fmt.Sprint(i), Color: style.ColorWarning},
			block.CodeBlock{Language: "go", Lines: []string{"x := 1", "y := x + 1"}},
			block.Rule{},
		)
	}
	return blocks
}

func TestAssemble_Order(t *testing.T) {
	t.Parallel()

	blocks := mixedBlocks()
	doc := assemble(t, blocks, Options{})

	if doc.PageCount() < 2 {
		t.Fatalf("PageCount() = %d, want several pages", doc.PageCount())
	}

	seen := make(map[int]bool)
	last := -1
	for pi, p := range doc.Pages {
		if p.Number != pi+1 {
			t.Errorf("page %d numbered %d", pi, p.Number)
		}
		for _, op := range contentOps(p) {
			if op.Source() < last {
				t.Fatalf("page %d: block %d drawn after block %d", p.Number, op.Source(), last)
			}
			last = op.Source()
			seen[op.Source()] = true
		}
	}
	for i := range blocks {
		if !seen[i] {
			t.Errorf("block %d (%T) produced no draw ops", i, blocks[i])
		}
	}
}

func TestAssemble_CursorBounds(t *testing.T) {
	t.Parallel()

	doc := assemble(t, mixedBlocks(), Options{})
	limit := letterHeight - style.DefaultMargin + 1e-6

	for _, p := range doc.Pages {
		for _, op := range contentOps(p) {
			switch o := op.(type) {
			case layout.TextOp:
				if o.Y > limit {
					t.Errorf("page %d: text %q baseline %v below limit", p.Number, o.Text, o.Y)
				}
			case layout.RectOp:
				if o.Y+o.H > limit {
					t.Errorf("page %d: rect bottom %v below limit", p.Number, o.Y+o.H)
				}
			case layout.TableOp:
				if o.Y+o.Height() > limit {
					t.Errorf("page %d: table bottom %v below limit", p.Number, o.Y+o.Height())
				}
			}
		}
	}
}

// ---------------------------------------------------------------------------
// TestAssemble_Deterministic - Identical input yields identical layout
// ---------------------------------------------------------------------------

func TestAssemble_Deterministic(t *testing.T) {
	t.Parallel()

	opts := Options{FooterText: "Draft", MarginOverride: 50}
	a := assemble(t, mixedBlocks(), opts)
	b := assemble(t, mixedBlocks(), opts)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("layouts differ (-first +second):\n%s", diff)
	}
}

// ---------------------------------------------------------------------------
// TestAssemble_TableSplit - Header row repeats on continuation pages
// ---------------------------------------------------------------------------

func TestAssemble_TableSplit(t *testing.T) {
	t.Parallel()

	rows := make([][]string, 120)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("row %d", i), "ok"}
	}
	tb := block.Table{Headers: []string{"Segment", "State"}, Rows: rows}
	doc := assemble(t, []block.Block{para("Intro"), tb}, Options{})

	var slices []layout.TableOp
	for _, p := range doc.Pages {
		ops := contentOps(p)
		for i, op := range ops {
			to, ok := op.(layout.TableOp)
			if !ok {
				continue
			}
			if to.Continued && i != 0 {
				t.Errorf("page %d: continuation table is not the first op", p.Number)
			}
			slices = append(slices, to)
		}
	}

	if len(slices) < 2 {
		t.Fatalf("table slices = %d, want split across pages", len(slices))
	}
	next := 0
	for i, s := range slices {
		if s.Continued != (i > 0) {
			t.Errorf("slice %d Continued = %v", i, s.Continued)
		}
		if s.Header.Index != -1 || s.Header.Cells[0][0] != "Segment" {
			t.Errorf("slice %d header = %+v, want repeated header", i, s.Header)
		}
		if len(s.Rows) == 0 {
			t.Errorf("slice %d has no rows", i)
		}
		for _, r := range s.Rows {
			if r.Index != next {
				t.Fatalf("slice %d: row %d, want %d", i, r.Index, next)
			}
			next++
		}
	}
	if next != len(rows) {
		t.Errorf("rows drawn = %d, want %d", next, len(rows))
	}
}

func TestAssemble_TableScenario(t *testing.T) {
	t.Parallel()

	reg := style.Default()
	tb := block.Table{Headers: []string{"A", "B"}, Rows: [][]string{{"1", "2"}, {"3", "4"}}}
	doc := assemble(t, []block.Block{tb}, Options{})

	ops := contentOps(doc.Pages[0])
	if len(ops) != 1 {
		t.Fatalf("content ops = %d, want 1 table op", len(ops))
	}
	op := ops[0].(layout.TableOp)
	if op.Header.Fill != reg.Color(style.ColorPrimary) || op.HeaderText != reg.Color(style.ColorInverse) {
		t.Errorf("header colors = %+v / %+v", op.Header.Fill, op.HeaderText)
	}
	if len(op.Rows) != 2 {
		t.Fatalf("body rows = %d, want 2", len(op.Rows))
	}
	if op.Rows[0].Fill != reg.Color(style.ColorWhite) || op.Rows[1].Fill != reg.Color(style.ColorLightGray) {
		t.Errorf("row fills = %+v, %+v, want white then light gray", op.Rows[0].Fill, op.Rows[1].Fill)
	}
	if diff := cmp.Diff([][]string{{"3"}, {"4"}}, op.Rows[1].Cells); diff != "" {
		t.Errorf("second row cells mismatch (-want +got):\n%s", diff)
	}
	if w := op.Width(); w != letterWidth-2*style.DefaultMargin {
		t.Errorf("table width = %v, want content width", w)
	}
}

// ---------------------------------------------------------------------------
// TestAssemble_NoOrphanHeadings - Headings stay with the following content
// ---------------------------------------------------------------------------

func TestAssemble_NoOrphanHeadings(t *testing.T) {
	t.Parallel()

	for lead := 0; lead < 60; lead++ {
		blocks := make([]block.Block, 0, lead+4)
		for i := 0; i < lead; i++ {
			blocks = append(blocks, para(words(25)))
		}
		blocks = append(blocks,
			block.Heading{Level: 1, Text: "Findings"},
			block.Heading{Level: 2, Text: "Detail"},
			para(words(60)),
			block.Table{Headers: []string{"K", "V"}, Rows: [][]string{{"a", "b"}}},
		)

		doc := assemble(t, blocks, Options{})
		for _, p := range doc.Pages {
			ops := contentOps(p)
			if len(ops) == 0 {
				continue
			}
			if last := ops[len(ops)-1]; last.Kind() == layout.RoleHeading {
				t.Fatalf("lead %d: page %d ends with a heading", lead, p.Number)
			}
		}
	}
}

// ---------------------------------------------------------------------------
// TestAssemble_Flow - Badges share rows and wrap before breaking
// ---------------------------------------------------------------------------

func TestAssemble_Flow(t *testing.T) {
	t.Parallel()

	var blocks []block.Block
	for i := 0; i < 40; i++ {
		blocks = append(blocks, block.Badge{Label: fmt.Sprintf("LANE %02d", i), Color: style.ColorInfo})
	}
	blocks = append(blocks, para("after"))
	doc := assemble(t, blocks, Options{})

	type box struct{ x, y float64 }
	var boxes []box
	for _, op := range contentOps(doc.Pages[0]) {
		if r, ok := op.(layout.RectOp); ok && r.Kind() == layout.RoleBadge {
			boxes = append(boxes, box{r.X, r.Y})
		}
	}
	if len(boxes) != 40 {
		t.Fatalf("badges on first page = %d, want 40", len(boxes))
	}
	if boxes[1].y != boxes[0].y || boxes[1].x <= boxes[0].x {
		t.Errorf("second badge %+v not beside first %+v", boxes[1], boxes[0])
	}
	rows := map[float64]bool{}
	for _, b := range boxes {
		rows[b.y] = true
	}
	if len(rows) < 2 {
		t.Errorf("badge rows = %d, want wrapping onto several rows", len(rows))
	}

	var afterY float64
	for _, op := range contentOps(doc.Pages[0]) {
		if txt, ok := op.(layout.TextOp); ok && txt.Text == "after" {
			afterY = txt.Y
		}
	}
	if afterY <= boxes[len(boxes)-1].y+badgeHeight {
		t.Errorf("paragraph baseline %v overlaps the last badge row", afterY)
	}
}

// ---------------------------------------------------------------------------
// TestAssemble_PageLimit - Resource limits surface as errors
// ---------------------------------------------------------------------------

func TestAssemble_PageLimit(t *testing.T) {
	t.Parallel()

	var blocks []block.Block
	for i := 0; i < 200; i++ {
		blocks = append(blocks, para(words(50)))
	}
	_, err := Assemble(style.Default(), layout.ApproxMetrics{}, Input{
		Blocks: blocks, Width: letterWidth, Height: letterHeight, MaxPages: 2,
	})
	if !errors.Is(err, ErrPageLimit) {
		t.Errorf("Assemble() error = %v, want ErrPageLimit", err)
	}
}

func TestAssemble_FooterOnEveryPage(t *testing.T) {
	t.Parallel()

	doc := assemble(t, mixedBlocks(), Options{FooterText: "Internal"})
	total := doc.PageCount()
	for i, p := range doc.Pages {
		want := fmt.Sprintf("Page %d of %d", i+1, total)
		found := false
		for _, op := range opsBySource(p, layout.SourceFooter) {
			if txt, ok := op.(layout.TextOp); ok && txt.Text == want {
				found = true
			}
		}
		if !found {
			t.Errorf("page %d missing %q", i+1, want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestResolveMargin - Margin overrides within range
// ---------------------------------------------------------------------------

func TestResolveMargin(t *testing.T) {
	t.Parallel()

	reg := style.Default()
	lower := MinMargin(reg)

	tests := []struct {
		name     string
		override float64
		want     float64
		used     bool
	}{
		{name: "zero keeps default", override: 0, want: 40},
		{name: "negative keeps default", override: -5, want: 40},
		{name: "valid override", override: 72, want: 72, used: true},
		{name: "too large keeps default", override: 160, want: 40},
		{name: "below footer room keeps default", override: 4, want: 40},
		{name: "exact minimum", override: lower, want: lower, used: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, used := ResolveMargin(reg, tt.override, letterWidth, letterHeight)
			if got != tt.want || used != tt.used {
				t.Errorf("ResolveMargin(%v) = %v, %v, want %v, %v", tt.override, got, used, tt.want, tt.used)
			}
		})
	}
}

func TestResolveMargin_ThemeMarginRaised(t *testing.T) {
	t.Parallel()

	reg := style.FromTheme(style.Theme{Margin: 2})
	got, used := ResolveMargin(reg, 0, letterWidth, letterHeight)
	if used || got != MinMargin(reg) {
		t.Errorf("ResolveMargin() = %v, %v, want %v, false", got, used, MinMargin(reg))
	}
}

func TestAssemble_FooterInsidePage(t *testing.T) {
	t.Parallel()

	for _, margin := range []float64{4, 12, 30, 72} {
		doc := assemble(t, []block.Block{para("x")}, Options{MarginOverride: margin, FooterText: "Draft"})
		for _, op := range opsBySource(doc.Pages[0], layout.SourceFooter) {
			txt, ok := op.(layout.TextOp)
			if !ok {
				continue
			}
			if bottom := txt.Y + txt.Font.Size/4; bottom > letterHeight {
				t.Errorf("margin %v: footer %q reaches %v on a %v page", margin, txt.Text, bottom, letterHeight)
			}
		}
	}
}

func TestAssemble_MarginOverride(t *testing.T) {
	t.Parallel()

	doc := assemble(t, []block.Block{para("x")}, Options{MarginOverride: 72})
	txt := contentOps(doc.Pages[0])[0].(layout.TextOp)
	if txt.X != 72 {
		t.Errorf("paragraph X = %v, want 72", txt.X)
	}
}

// ---------------------------------------------------------------------------
// TestAssemble_TallTableRow - Rows taller than a page stay inside the page
// ---------------------------------------------------------------------------

func tableOps(doc *layout.Document) []layout.TableOp {
	var out []layout.TableOp
	for _, p := range doc.Pages {
		for _, op := range p.Ops {
			if to, ok := op.(layout.TableOp); ok {
				out = append(out, to)
			}
		}
	}
	return out
}

func TestAssemble_TallTableRow(t *testing.T) {
	t.Parallel()

	limit := letterHeight - style.DefaultMargin + 1e-6

	tests := []struct {
		name      string
		blocks    []block.Block
		wantPages int
		wantRows  int
	}{
		{
			name:      "single tall cell starts on the first page",
			blocks:    []block.Block{block.Table{Headers: []string{"Notes"}, Rows: [][]string{{words(1500)}}}},
			wantPages: 1,
			wantRows:  1,
		},
		{
			name: "tall row between short rows",
			blocks: []block.Block{block.Table{
				Headers: []string{"Segment", "Notes"},
				Rows:    [][]string{{"A", "short"}, {"B", words(2000)}, {"C", "short"}},
			}},
			wantPages: 2,
			wantRows:  3,
		},
		{
			name:      "tall header",
			blocks:    []block.Block{block.Table{Headers: []string{words(3000)}, Rows: [][]string{{"x"}}}},
			wantPages: 1,
			wantRows:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := assemble(t, tt.blocks, Options{})
			if doc.PageCount() != tt.wantPages {
				t.Errorf("PageCount() = %d, want %d", doc.PageCount(), tt.wantPages)
			}

			rows := 0
			truncated := false
			for _, op := range tableOps(doc) {
				if bottom := op.Y + op.Height(); bottom > limit {
					t.Errorf("table bottom %v below limit %v", bottom, limit)
				}
				for _, r := range append([]layout.TableRow{op.Header}, op.Rows...) {
					for _, cell := range r.Cells {
						if n := len(cell); n > 0 && strings.HasSuffix(cell[n-1], ellipsis) {
							truncated = true
						}
					}
				}
				rows += len(op.Rows)
			}
			if rows != tt.wantRows {
				t.Errorf("rows drawn = %d, want %d", rows, tt.wantRows)
			}
			if !truncated {
				t.Error("no cell was marked as truncated")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestAssemble_HeadingBeforeTallTable - Heading shares the page with the table
// ---------------------------------------------------------------------------

func TestAssemble_HeadingBeforeTallTable(t *testing.T) {
	t.Parallel()

	for lead := 0; lead < 40; lead++ {
		blocks := make([]block.Block, 0, lead+2)
		for i := 0; i < lead; i++ {
			blocks = append(blocks, para(words(25)))
		}
		blocks = append(blocks,
			block.Heading{Level: 2, Text: "Segments"},
			block.Table{Headers: []string{"Notes"}, Rows: [][]string{{words(1500)}}},
		)

		doc := assemble(t, blocks, Options{})
		headingPage, tablePage := -1, -1
		for _, p := range doc.Pages {
			for _, op := range contentOps(p) {
				switch op.Kind() {
				case layout.RoleHeading:
					headingPage = p.Number
				case layout.RoleTable:
					if tablePage < 0 {
						tablePage = p.Number
					}
				}
			}
		}
		if headingPage != tablePage {
			t.Fatalf("lead %d: heading on page %d, table starts on page %d", lead, headingPage, tablePage)
		}
	}
}

// ---------------------------------------------------------------------------
// TestAssemble_HeadingSkipsEmptyFollowers - Blocks that draw nothing do not
// count as the heading's content
// ---------------------------------------------------------------------------

func TestAssemble_HeadingSkipsEmptyFollowers(t *testing.T) {
	t.Parallel()

	followers := []struct {
		name  string
		empty block.Block
	}{
		{name: "whitespace paragraph", empty: block.Paragraph{Spans: []block.Span{{Text: "   "}}}},
		{name: "paragraph without spans", empty: block.Paragraph{}},
		{name: "empty table", empty: block.Table{}},
	}

	for _, f := range followers {
		t.Run(f.name, func(t *testing.T) {
			t.Parallel()

			for lead := 0; lead < 60; lead++ {
				blocks := make([]block.Block, 0, lead+3)
				for i := 0; i < lead; i++ {
					blocks = append(blocks, para(words(25)))
				}
				blocks = append(blocks,
					block.Heading{Level: 2, Text: "Closures"},
					f.empty,
					block.Table{Headers: []string{"Route", "Reason"}, Rows: [][]string{{"I-80", "snow"}}},
				)

				doc := assemble(t, blocks, Options{})
				for _, p := range doc.Pages {
					ops := contentOps(p)
					if len(ops) == 0 {
						continue
					}
					if last := ops[len(ops)-1]; last.Kind() == layout.RoleHeading {
						t.Fatalf("lead %d: page %d ends with a heading", lead, p.Number)
					}
				}
			}
		})
	}
}
