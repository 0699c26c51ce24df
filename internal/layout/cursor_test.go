package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-corridorpdf/internal/style"
)

// ---------------------------------------------------------------------------
// TestCursor - Position tracking and page breaks
// ---------------------------------------------------------------------------

func TestCursor_Geometry(t *testing.T) {
	t.Parallel()

	c := NewCursor(792, 40)
	if c.Page != 0 || c.Y != 40 {
		t.Fatalf("NewCursor() = %+v, want page 0 at Y=40", c)
	}
	if got := c.Limit(); got != 752 {
		t.Errorf("Limit() = %v, want 752", got)
	}
	if got := c.ContentHeight(); got != 712 {
		t.Errorf("ContentHeight() = %v, want 712", got)
	}
	if !c.AtTop() {
		t.Error("AtTop() = false on a fresh cursor")
	}
}

func TestCursor_FitsAndAdvance(t *testing.T) {
	t.Parallel()

	c := NewCursor(200, 20)
	if !c.Fits(160) {
		t.Error("Fits(160) = false, want true for exact fit")
	}
	if c.Fits(160.5) {
		t.Error("Fits(160.5) = true, want false")
	}

	c.Advance(100)
	if c.Y != 120 || c.AtTop() {
		t.Errorf("after Advance(100): %+v", c)
	}
	if got := c.Remaining(); got != 60 {
		t.Errorf("Remaining() = %v, want 60", got)
	}

	c.Advance(1000)
	if c.Y != c.Limit() {
		t.Errorf("Advance past limit: Y = %v, want clamp at %v", c.Y, c.Limit())
	}
	if c.Remaining() != 0 {
		t.Errorf("Remaining() = %v, want 0", c.Remaining())
	}
}

func TestCursor_Ensure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		advance   float64
		need      float64
		wantBreak bool
		wantPage  int
	}{
		{name: "fits without break", advance: 50, need: 50, wantBreak: false, wantPage: 0},
		{name: "overflow breaks", advance: 150, need: 50, wantBreak: true, wantPage: 1},
		{name: "oversized at top stays", advance: 0, need: 500, wantBreak: false, wantPage: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewCursor(200, 20)
			c.Advance(tt.advance)
			if got := c.Ensure(tt.need); got != tt.wantBreak {
				t.Errorf("Ensure(%v) = %v, want %v", tt.need, got, tt.wantBreak)
			}
			if c.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", c.Page, tt.wantPage)
			}
			if c.Y > c.Limit() {
				t.Errorf("Y = %v exceeds limit %v", c.Y, c.Limit())
			}
		})
	}
}

func TestCursor_Break(t *testing.T) {
	t.Parallel()

	c := NewCursor(300, 30)
	c.Advance(100)
	c.Break()
	if diff := cmp.Diff(Cursor{Page: 1, Y: 30, PageHeight: 300, Margin: 30}, c); diff != "" {
		t.Errorf("Break() mismatch (-want +got):\n%s", diff)
	}
}

// ---------------------------------------------------------------------------
// TestTableOp - Shared cell geometry
// ---------------------------------------------------------------------------

func TestTableOp_Cells(t *testing.T) {
	t.Parallel()

	white := style.Color{R: 255, G: 255, B: 255}
	op := TableOp{
		X: 10, Y: 100,
		Widths: []float64{50, 30},
		Header: TableRow{Index: -1, Cells: [][]string{{"A"}, {"B"}}, Height: 20},
		Rows: []TableRow{
			{Index: 0, Cells: [][]string{{"1"}, {"2"}}, Height: 15, Fill: white},
		},
	}

	if got := op.Width(); got != 80 {
		t.Errorf("Width() = %v, want 80", got)
	}
	if got := op.Height(); got != 35 {
		t.Errorf("Height() = %v, want 35", got)
	}

	cells := op.Cells()
	if len(cells) != 4 {
		t.Fatalf("len(Cells()) = %d, want 4", len(cells))
	}
	if !cells[0].Header || cells[2].Header {
		t.Error("header flag misplaced")
	}
	if cells[1].X != 60 || cells[1].W != 30 {
		t.Errorf("second header cell = %+v", cells[1])
	}
	if cells[3].Y != 120 || cells[3].H != 15 || cells[3].Lines[0] != "2" {
		t.Errorf("body cell = %+v", cells[3])
	}
}

func TestOrigin(t *testing.T) {
	t.Parallel()

	var op Op = TextOp{Origin: Origin{Block: 3, Role: RoleBody}}
	if op.Source() != 3 || op.Kind() != RoleBody {
		t.Errorf("Source()/Kind() = %d/%s", op.Source(), op.Kind())
	}
}

func TestApproxMetrics(t *testing.T) {
	t.Parallel()

	f := style.Font{Size: 10}
	if got := (ApproxMetrics{}).StringWidth("héllo", f); got != 25 {
		t.Errorf("StringWidth() = %v, want 25", got)
	}
	if got := (ApproxMetrics{Ratio: 0.25}).StringWidth("ab", f); got != 5 {
		t.Errorf("StringWidth() = %v, want 5", got)
	}
}
