package elements

import "github.com/wesen/ptable/pkg/gridmodel"

// Table maps (ypos, xpos) grid positions to elements. Built once per
// successful load and never mutated afterwards.
type Table = gridmodel.Grid[ChemicalElement]

// BuildTable indexes decoded elements by their (ypos, xpos) position.
// Two elements claiming the same position is not rejected: the later
// one in input order wins, matching the dataset's established contract.
func BuildTable(els []ChemicalElement) *Table {
	t := gridmodel.New[ChemicalElement]()
	for _, el := range els {
		t.Put(gridmodel.Pos(el.YPos, el.XPos), el)
	}
	return t
}
