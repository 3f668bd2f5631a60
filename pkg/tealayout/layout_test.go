package tealayout

import (
	"image"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestLayoutBasic(t *testing.T) {
	l := NewBuilder(120, 40).
		TopFixed("header", 1).
		BottomFixed("status", 1).
		RightFixed("panel", 30).
		Remaining("canvas").
		Build()

	if l.TermW != 120 || l.TermH != 40 {
		t.Fatalf("term size: expected 120x40, got %dx%d", l.TermW, l.TermH)
	}

	hd := l.Get("header")
	if hd.Rect != image.Rect(0, 0, 120, 1) {
		t.Errorf("header: expected (0,0)-(120,1), got %v", hd.Rect)
	}

	st := l.Get("status")
	if st.Rect != image.Rect(0, 39, 120, 40) {
		t.Errorf("status: expected (0,39)-(120,40), got %v", st.Rect)
	}

	pn := l.Get("panel")
	if pn.Rect != image.Rect(90, 1, 120, 39) {
		t.Errorf("panel: expected (90,1)-(120,39), got %v", pn.Rect)
	}

	cv := l.Get("canvas")
	if cv.Rect != image.Rect(0, 1, 90, 39) {
		t.Errorf("canvas: expected (0,1)-(90,39), got %v", cv.Rect)
	}
}

func TestLayoutRegionsTile(t *testing.T) {
	l := NewBuilder(80, 24).
		TopFixed("header", 1).
		BottomFixed("status", 1).
		RightFixed("panel", 30).
		Remaining("canvas").
		Build()

	names := []string{"header", "status", "panel", "canvas"}
	total := 0
	for i, a := range names {
		ra := l.Get(a).Rect
		total += ra.Dx() * ra.Dy()
		for _, b := range names[i+1:] {
			rb := l.Get(b).Rect
			if ra.Overlaps(rb) {
				t.Errorf("regions %s and %s overlap: %v vs %v", a, b, ra, rb)
			}
		}
	}
	if total != 80*24 {
		t.Errorf("regions do not tile the terminal: covered %d of %d cells", total, 80*24)
	}
}

func TestLayoutRemainingOnly(t *testing.T) {
	l := NewBuilder(80, 24).Remaining("full").Build()
	if r := l.Get("full"); r.Rect != image.Rect(0, 0, 80, 24) {
		t.Errorf("full: expected (0,0)-(80,24), got %v", r.Rect)
	}
}

func TestLayoutDegenerate(t *testing.T) {
	l := NewBuilder(0, 0).
		TopFixed("header", 1).
		Remaining("canvas").
		Build()
	if r := l.Get("canvas"); r.Rect != (image.Rectangle{}) {
		t.Errorf("canvas: expected empty rect, got %v", r.Rect)
	}
}

func TestCenteredLayerHitsCenter(t *testing.T) {
	box := lipgloss.NewStyle()
	layer := CenteredLayer("XX", 10, 3, box)
	comp := lipgloss.NewCompositor(layer)
	if hit := comp.Hit(4, 1); hit.ID() != "overlay" {
		t.Errorf("expected overlay at terminal center, hit %q", hit.ID())
	}
}
