package gridmodel

import (
	"image"
	"testing"
)

// ── Grid ──

func TestPutAndAt(t *testing.T) {
	g := New[string]()
	g.Put(Pos(2, 14), "Si")

	v, ok := g.At(Pos(2, 14))
	if !ok {
		t.Fatal("At: expected occupied cell")
	}
	if v != "Si" {
		t.Errorf("At: expected Si, got %q", v)
	}

	if _, ok := g.At(Pos(2, 15)); ok {
		t.Error("At: expected empty cell at (2,15)")
	}
}

func TestPutOverwriteKeepsLater(t *testing.T) {
	g := New[string]()
	g.Put(Pos(6, 3), "first")
	g.Put(Pos(6, 3), "second")

	v, ok := g.At(Pos(6, 3))
	if !ok || v != "second" {
		t.Errorf("expected later write to win, got %q (ok=%v)", v, ok)
	}
	if g.Len() != 1 {
		t.Errorf("expected single occupied position, got %d", g.Len())
	}
}

func TestDistinctPositionsBothKept(t *testing.T) {
	g := New[string]()
	g.Put(Pos(1, 1), "H")
	g.Put(Pos(1, 18), "He")

	if g.Len() != 2 {
		t.Fatalf("expected 2 occupied positions, got %d", g.Len())
	}
	if v, _ := g.At(Pos(1, 1)); v != "H" {
		t.Errorf("expected H at (1,1), got %q", v)
	}
	if v, _ := g.At(Pos(1, 18)); v != "He" {
		t.Errorf("expected He at (1,18), got %q", v)
	}
}

func TestPositionsInsertionOrder(t *testing.T) {
	g := New[int]()
	g.Put(Pos(3, 3), 0)
	g.Put(Pos(1, 1), 1)
	g.Put(Pos(2, 2), 2)
	g.Put(Pos(1, 1), 3) // overwrite keeps original slot

	want := []Position{Pos(3, 3), Pos(1, 1), Pos(2, 2)}
	got := g.Positions()
	if len(got) != len(want) {
		t.Fatalf("expected %d positions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

// ── Metrics ──

var m = Metrics{
	GutterW: 4, GutterH: 1,
	CellW: 10, CellH: 4,
	MaxRows: 10, MaxCols: 18,
}

func TestCellOriginAndBounds(t *testing.T) {
	if o := m.CellOrigin(Pos(1, 1)); o != image.Pt(4, 1) {
		t.Errorf("origin (1,1): expected (4,1), got %v", o)
	}
	b := m.CellBounds(Pos(2, 3))
	want := image.Rect(24, 5, 34, 9)
	if b != want {
		t.Errorf("bounds (2,3): expected %v, got %v", want, b)
	}
}

func TestCellAt(t *testing.T) {
	// Top-left corner of (1,1)
	if pos, ok := m.CellAt(image.Pt(4, 1)); !ok || pos != Pos(1, 1) {
		t.Errorf("expected (1,1), got %v (ok=%v)", pos, ok)
	}
	// Last cell in the lattice
	if pos, ok := m.CellAt(image.Pt(4+18*10-1, 1+10*4-1)); !ok || pos != Pos(10, 18) {
		t.Errorf("expected (10,18), got %v (ok=%v)", pos, ok)
	}
	// Gutter is not a cell
	if _, ok := m.CellAt(image.Pt(2, 5)); ok {
		t.Error("gutter point should not hit a cell")
	}
	// Past the right edge
	if _, ok := m.CellAt(image.Pt(4+18*10, 5)); ok {
		t.Error("point past last column should not hit a cell")
	}
}

func TestAxisHits(t *testing.T) {
	if col, ok := m.ColAt(image.Pt(4+5*10, 0)); !ok || col != 6 {
		t.Errorf("ColAt: expected column 6, got %d (ok=%v)", col, ok)
	}
	if _, ok := m.ColAt(image.Pt(1, 0)); ok {
		t.Error("ColAt: corner gutter should not hit a column")
	}
	if row, ok := m.RowAt(image.Pt(0, 1+3*4)); !ok || row != 4 {
		t.Errorf("RowAt: expected row 4, got %d (ok=%v)", row, ok)
	}
	if _, ok := m.RowAt(image.Pt(4, 5)); ok {
		t.Error("RowAt: cell-area point should not hit the row axis")
	}
}
