package tableui

import "github.com/wesen/ptable/pkg/gridmodel"

// Grid geometry. Rows 1-8 are the real periods; rows 9 and 10 are the
// synthetic footnote rows holding the lanthanide and actinide series.
const (
	groupCount  = 18
	rowCount    = 10
	periodCount = 8

	lanthanideRow = 9
	actinideRow   = 10

	cellW   = 10
	cellH   = 4
	gutterW = 4 // left gutter: period numbers
	gutterH = 1 // top gutter: group numbers
)

// Chrome geometry.
const (
	headerHeight = 1
	statusHeight = 1
	panelWidth   = 30
)

// metrics places the lattice in world space; the camera pans over it.
var metrics = gridmodel.Metrics{
	GutterW: gutterW, GutterH: gutterH,
	CellW: cellW, CellH: cellH,
	MaxRows: rowCount, MaxCols: groupCount,
}

// The two placeholder cells referencing the footnote blocks. They sit
// in the group-3 column of periods 6 and 7 and are deliberately empty
// in the dataset.
var (
	lanthanidePlaceholder = gridmodel.Pos(6, 3)
	actinidePlaceholder   = gridmodel.Pos(7, 3)
)
