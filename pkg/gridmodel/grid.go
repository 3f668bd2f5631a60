// Package gridmodel provides a sparse generic grid keyed by (row, column)
// positions, with stable insertion-order iteration and screen-space cell
// geometry for hit testing.
package gridmodel

// Position is a (row, column) grid coordinate. Rows and columns are
// 1-based; (0,0) is the zero value and never a valid cell.
type Position struct {
	Row, Col int
}

// Pos is shorthand for constructing a Position.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Grid is a sparse mapping from Position to a cell value. Positions are
// iterated in first-insertion order. Writing to an occupied position
// replaces the value and keeps the original iteration slot.
type Grid[T any] struct {
	cells map[Position]T
	order []Position
}

// New creates an empty grid.
func New[T any]() *Grid[T] {
	return &Grid[T]{cells: make(map[Position]T)}
}

// Put stores a value at the given position. A later Put to the same
// position silently overwrites the earlier value.
func (g *Grid[T]) Put(pos Position, value T) {
	if _, occupied := g.cells[pos]; !occupied {
		g.order = append(g.order, pos)
	}
	g.cells[pos] = value
}

// At returns the value at the given position, if any.
func (g *Grid[T]) At(pos Position) (T, bool) {
	v, ok := g.cells[pos]
	return v, ok
}

// Len returns the number of occupied positions.
func (g *Grid[T]) Len() int {
	return len(g.order)
}

// Positions returns the occupied positions in first-insertion order.
func (g *Grid[T]) Positions() []Position {
	out := make([]Position, len(g.order))
	copy(out, g.order)
	return out
}
