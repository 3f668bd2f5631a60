// Package cellbuf provides a 2D character buffer with per-cell styling
// and efficient Lipgloss-based rendering.
//
// Each cell holds a rune and a StyleKey (an int enum). At render time,
// the caller provides a map[StyleKey]lipgloss.Style so the buffer is
// decoupled from specific color schemes.
//
// Limitation: all runes are assumed to be single-width. CJK or other
// double-width characters are not handled correctly.
package cellbuf

// StyleKey identifies a visual style. The caller defines the mapping
// from StyleKey to lipgloss.Style at render time.
type StyleKey int

// Cell is a single character in the buffer with an associated style.
type Cell struct {
	Ch    rune
	Style StyleKey
}

// Buffer is a 2D grid of styled cells.
type Buffer struct {
	W, H  int
	Cells [][]Cell // [row][col]
}

// New creates a Buffer of the given size, filled with spaces in the
// given default style.
func New(w, h int, defaultStyle StyleKey) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b := &Buffer{W: w, H: h, Cells: make([][]Cell, h)}
	for y := range b.Cells {
		row := make([]Cell, w)
		for x := range row {
			row[x] = Cell{Ch: ' ', Style: defaultStyle}
		}
		b.Cells[y] = row
	}
	return b
}

// InBounds reports whether (x, y) is inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Set writes a single character at (x, y). Out-of-bounds writes are
// silently ignored.
func (b *Buffer) Set(x, y int, ch rune, style StyleKey) {
	if b.InBounds(x, y) {
		b.Cells[y][x] = Cell{Ch: ch, Style: style}
	}
}

// SetString writes a string starting at (x, y), advancing x one cell
// per rune. Characters that fall outside the buffer are silently
// skipped.
func (b *Buffer) SetString(x, y int, s string, style StyleKey) {
	i := 0
	for _, ch := range s {
		b.Set(x+i, y, ch, style)
		i++
	}
}

// FillRect fills the w x h rectangle anchored at (x, y) with a single
// character. The rectangle is clipped to the buffer.
func (b *Buffer) FillRect(x, y, w, h int, ch rune, style StyleKey) {
	for ry := y; ry < y+h; ry++ {
		for rx := x; rx < x+w; rx++ {
			b.Set(rx, ry, ch, style)
		}
	}
}

// DotGrid stamps dots at regular world-space intervals, offset by a
// camera position. A dot lands wherever both world coordinates are
// multiples of the respective pitch. Used for lattice backdrops.
func (b *Buffer) DotGrid(camX, camY, pitchX, pitchY int, style StyleKey) {
	for y := 0; y < b.H; y++ {
		if mod(y+camY, pitchY) != 0 {
			continue
		}
		for x := 0; x < b.W; x++ {
			if mod(x+camX, pitchX) == 0 {
				b.Set(x, y, '·', style)
			}
		}
	}
}

// mod returns a non-negative modulus (Go's % can return negative for
// negative operands).
func mod(a, m int) int {
	if m == 0 {
		return 0
	}
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
