package gridmodel

import "image"

// Metrics describes a uniform cell lattice in screen/world space: a
// top-left gutter for axis labels, then MaxRows x MaxCols cells of
// CellW x CellH character cells each.
type Metrics struct {
	GutterW, GutterH int // axis gutter, in character cells
	CellW, CellH     int
	MaxRows, MaxCols int
}

// CellOrigin returns the world-space top-left corner of a cell.
func (m Metrics) CellOrigin(pos Position) image.Point {
	return image.Pt(
		m.GutterW+(pos.Col-1)*m.CellW,
		m.GutterH+(pos.Row-1)*m.CellH,
	)
}

// CellBounds returns the world-space rectangle covered by a cell.
func (m Metrics) CellBounds(pos Position) image.Rectangle {
	o := m.CellOrigin(pos)
	return image.Rect(o.X, o.Y, o.X+m.CellW, o.Y+m.CellH)
}

// Bounds returns the world-space rectangle of the whole lattice,
// gutter included.
func (m Metrics) Bounds() image.Rectangle {
	return image.Rect(0, 0,
		m.GutterW+m.MaxCols*m.CellW,
		m.GutterH+m.MaxRows*m.CellH,
	)
}

// CellAt hit-tests a world-space point against the lattice. It reports
// the containing cell position, or false when the point lies in the
// gutter or outside the lattice.
func (m Metrics) CellAt(pt image.Point) (Position, bool) {
	if pt.X < m.GutterW || pt.Y < m.GutterH {
		return Position{}, false
	}
	col := (pt.X-m.GutterW)/m.CellW + 1
	row := (pt.Y-m.GutterH)/m.CellH + 1
	if col < 1 || col > m.MaxCols || row < 1 || row > m.MaxRows {
		return Position{}, false
	}
	return Pos(row, col), true
}

// ColAt hit-tests a world-space point against the column axis gutter
// (the header strip above the cells). It reports the column under the
// point, or false.
func (m Metrics) ColAt(pt image.Point) (int, bool) {
	if pt.Y < 0 || pt.Y >= m.GutterH || pt.X < m.GutterW {
		return 0, false
	}
	col := (pt.X-m.GutterW)/m.CellW + 1
	if col < 1 || col > m.MaxCols {
		return 0, false
	}
	return col, true
}

// RowAt hit-tests a world-space point against the row axis gutter (the
// header strip left of the cells). It reports the row under the point,
// or false.
func (m Metrics) RowAt(pt image.Point) (int, bool) {
	if pt.X < 0 || pt.X >= m.GutterW || pt.Y < m.GutterH {
		return 0, false
	}
	row := (pt.Y-m.GutterH)/m.CellH + 1
	if row < 1 || row > m.MaxRows {
		return 0, false
	}
	return row, true
}
