package tableui

import (
	"fmt"

	"github.com/wesen/ptable/internal/elements"
	"github.com/wesen/ptable/pkg/gridmodel"
)

// HighlightKind discriminates the closed set of hover targets.
type HighlightKind int

const (
	HighlightNone HighlightKind = iota
	HighlightElement
	HighlightGroup
	HighlightPeriod
	HighlightLanthanides
	HighlightActinides
)

// Highlight is the transient hover target. It is a tagged union: Pos is
// meaningful only for HighlightElement, N only for HighlightGroup and
// HighlightPeriod. Every consumer switches exhaustively on Kind.
type Highlight struct {
	Kind HighlightKind
	Pos  gridmodel.Position
	N    int
}

func NoHighlight() Highlight                          { return Highlight{Kind: HighlightNone} }
func ElementHighlight(pos gridmodel.Position) Highlight { return Highlight{Kind: HighlightElement, Pos: pos} }
func GroupHighlight(n int) Highlight                  { return Highlight{Kind: HighlightGroup, N: n} }
func PeriodHighlight(n int) Highlight                 { return Highlight{Kind: HighlightPeriod, N: n} }
func LanthanideHighlight() Highlight                  { return Highlight{Kind: HighlightLanthanides} }
func ActinideHighlight() Highlight                    { return Highlight{Kind: HighlightActinides} }

// Dimmed decides the visual state of one grid cell under this highlight.
// el is the element bound to the cell, or nil for an empty cell. The
// function is total: it cannot fail for any (target, position) pair.
func (h Highlight) Dimmed(pos gridmodel.Position, el *elements.ChemicalElement) bool {
	switch h.Kind {
	case HighlightNone, HighlightElement:
		// Element hover highlights via the detail panel, not by dimming.
		return false

	case HighlightGroup:
		if pos.Col != h.N {
			return true
		}
		if pos.Col == 3 {
			// The group-3 placeholder cells stand in for the footnote
			// blocks and do not belong to the group themselves.
			return pos.Row == 6 || pos.Row == 7
		}
		return pos.Row > 8

	case HighlightPeriod:
		// Footnote rows 9/10 hold elements whose period is still 6/7,
		// so a bound element is matched on its own period field.
		if el != nil {
			return el.Period != h.N
		}
		return pos.Row != h.N

	case HighlightLanthanides:
		return pos != lanthanidePlaceholder && pos.Row != lanthanideRow

	case HighlightActinides:
		return pos != actinidePlaceholder && pos.Row != actinideRow
	}
	return false
}

// GroupAxisDimmed decides the state of the group-number header cell for
// column g under this highlight.
func (h Highlight) GroupAxisDimmed(g int) bool {
	switch h.Kind {
	case HighlightNone, HighlightElement:
		return false
	case HighlightGroup:
		return h.N != g
	case HighlightPeriod, HighlightLanthanides, HighlightActinides:
		return true
	}
	return false
}

// PeriodAxisDimmed decides the state of the period-number header cell
// for period p under this highlight.
func (h Highlight) PeriodAxisDimmed(p int) bool {
	switch h.Kind {
	case HighlightNone, HighlightElement:
		return false
	case HighlightPeriod:
		return h.N != p
	case HighlightGroup, HighlightLanthanides, HighlightActinides:
		return true
	}
	return false
}

// String renders the target for the status bar.
func (h Highlight) String() string {
	switch h.Kind {
	case HighlightElement:
		return fmt.Sprintf("cell (%d,%d)", h.Pos.Row, h.Pos.Col)
	case HighlightGroup:
		return fmt.Sprintf("group %d", h.N)
	case HighlightPeriod:
		return fmt.Sprintf("period %d", h.N)
	case HighlightLanthanides:
		return "lanthanides"
	case HighlightActinides:
		return "actinides"
	default:
		return "none"
	}
}
