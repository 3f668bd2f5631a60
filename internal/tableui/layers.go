package tableui

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/wesen/ptable/internal/elements"
	"github.com/wesen/ptable/pkg/cellbuf"
	"github.com/wesen/ptable/pkg/gridmodel"
)

// cellbuf style keys for the canvas backdrop layer.
const (
	styleCanvas cellbuf.StyleKey = iota
	styleDots
	styleGutter
	styleAxis
	styleAxisActive
	styleAxisDim
)

var bufStyles = map[cellbuf.StyleKey]lipgloss.Style{
	styleCanvas:     lipgloss.NewStyle().Background(colorBG),
	styleDots:       lipgloss.NewStyle().Foreground(c("#232c33")).Background(colorBG),
	styleGutter:     lipgloss.NewStyle().Background(colorGutter),
	styleAxis:       lipgloss.NewStyle().Foreground(colorFaint).Background(colorGutter),
	styleAxisActive: lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorGutter),
	styleAxisDim:    lipgloss.NewStyle().Foreground(dimColor(colorFaint)).Background(colorGutter),
}

// buildBackdropLayer renders the empty-lattice backdrop and the axis
// gutters: one dot per cell corner, gutter strips along the world
// origin edges, and the group/period numbers inside them. Axis numbers
// dim and activate with the same matching rules as grid cells.
func buildBackdropLayer(camX, camY int, viewport image.Rectangle,
	highlight Highlight) *lipgloss.Layer {

	w := viewport.Dx()
	h := viewport.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(viewport.Min.X).Y(viewport.Min.Y).Z(1)
	}

	buf := cellbuf.New(w, h, styleCanvas)
	buf.DotGrid(camX-gutterW, camY-gutterH, cellW, cellH, styleDots)

	world := metrics.Bounds()
	buf.FillRect(-camX, -camY, world.Dx(), gutterH, ' ', styleGutter)
	buf.FillRect(-camX, -camY, gutterW, world.Dy(), ' ', styleGutter)

	groupKey := func(g int) cellbuf.StyleKey {
		if highlight.Kind == HighlightGroup && highlight.N == g {
			return styleAxisActive
		}
		if highlight.GroupAxisDimmed(g) {
			return styleAxisDim
		}
		return styleAxis
	}
	periodKey := func(p int) cellbuf.StyleKey {
		if highlight.Kind == HighlightPeriod && highlight.N == p {
			return styleAxisActive
		}
		if highlight.PeriodAxisDimmed(p) {
			return styleAxisDim
		}
		return styleAxis
	}

	// Group numbers across the top gutter, centered over each column
	for g := 1; g <= groupCount; g++ {
		label := strconv.Itoa(g)
		wx := gutterW + (g-1)*cellW + (cellW-len(label))/2
		buf.SetString(wx-camX, -camY, label, groupKey(g))
	}

	// Period numbers down the left gutter, centered beside each row
	for p := 1; p <= periodCount; p++ {
		label := strconv.Itoa(p)
		wy := gutterH + (p-1)*cellH + cellH/2
		buf.SetString((gutterW-len(label))/2-camX, wy-camY, label, periodKey(p))
	}

	rendered := buf.Render(bufStyles)
	return lipgloss.NewLayer(rendered).X(viewport.Min.X).Y(viewport.Min.Y).Z(1).ID("backdrop")
}

// buildCellLayers creates one layer per occupied grid position.
func buildCellLayers(table *elements.Table, camX, camY int, viewport image.Rectangle,
	highlight Highlight) []*lipgloss.Layer {

	var layers []*lipgloss.Layer

	for row := 1; row <= rowCount; row++ {
		for col := 1; col <= groupCount; col++ {
			pos := gridmodel.Pos(row, col)
			el, ok := table.At(pos)
			if !ok {
				continue
			}

			origin := metrics.CellOrigin(pos)
			sx := origin.X - camX + viewport.Min.X
			sy := origin.Y - camY + viewport.Min.Y

			// Visibility culling
			cellRect := image.Rect(sx, sy, sx+cellW, sy+cellH)
			if !cellRect.Overlaps(viewport) {
				continue
			}

			dimmed := highlight.Dimmed(pos, &el)
			hovered := highlight.Kind == HighlightElement && highlight.Pos == pos

			layer := lipgloss.NewLayer(renderElementCell(el, dimmed, hovered)).
				X(sx).Y(sy).Z(2).
				ID(fmt.Sprintf("cell-%d-%d", row, col))
			layers = append(layers, layer)
		}
	}

	return layers
}

// renderElementCell renders one element as a cellW x cellH block:
// atomic number, symbol (bold, phase-colored), name, atomic mass.
func renderElementCell(el elements.ChemicalElement, dimmed, hovered bool) string {
	bg := categoryColor(el.Category)
	symFg := phaseColor(el.Phase)
	textFg := colorText
	faintFg := c("#c9d1d9")

	if hovered {
		bg = hoverColor(bg)
	}
	if dimmed {
		bg = dimColor(bg)
		symFg = dimColor(symFg)
		textFg = dimColor(textFg)
		faintFg = dimColor(faintFg)
	}

	base := lipgloss.NewStyle().Background(bg)

	numLine := base.Foreground(faintFg).Width(cellW).
		Render(" " + strconv.Itoa(el.Number))

	symLine := base.Foreground(symFg).Bold(true).Width(cellW).
		AlignHorizontal(lipgloss.Center).
		Render(el.Symbol)

	nameStyle := base.Foreground(textFg).Width(cellW)
	if nameTier(el.Name) == 0 {
		nameStyle = nameStyle.AlignHorizontal(lipgloss.Center)
	}
	nameLine := nameStyle.Render(displayName(el.Name, cellW))

	massLine := base.Foreground(faintFg).Width(cellW).
		AlignHorizontal(lipgloss.Right).
		Render(FormatMass(el.AtomicMass))

	return strings.Join([]string{numLine, symLine, nameLine, massLine}, "\n")
}

// buildPlaceholderLayers renders the two static footnote-reference
// cells at (6,3) and (7,3). They are hoverable but hold no element.
func buildPlaceholderLayers(camX, camY int, viewport image.Rectangle,
	highlight Highlight) []*lipgloss.Layer {

	specs := []struct {
		pos   gridmodel.Position
		id    string
		lines []string
	}{
		{lanthanidePlaceholder, "placeholder-la", []string{"", "57–71", "Lanthan-", "ides"}},
		{actinidePlaceholder, "placeholder-ac", []string{"", "89–103", "Actinides", ""}},
	}

	var layers []*lipgloss.Layer
	for _, spec := range specs {
		origin := metrics.CellOrigin(spec.pos)
		sx := origin.X - camX + viewport.Min.X
		sy := origin.Y - camY + viewport.Min.Y
		cellRect := image.Rect(sx, sy, sx+cellW, sy+cellH)
		if !cellRect.Overlaps(viewport) {
			continue
		}

		fg := c("#8a97a3")
		bg := c("#1b232b")
		if highlight.Dimmed(spec.pos, nil) {
			fg = dimColor(fg)
			bg = dimColor(bg)
		}
		style := lipgloss.NewStyle().
			Foreground(fg).Background(bg).
			Width(cellW).AlignHorizontal(lipgloss.Center)

		rendered := make([]string, len(spec.lines))
		for i, line := range spec.lines {
			rendered[i] = style.Render(line)
		}

		layer := lipgloss.NewLayer(strings.Join(rendered, "\n")).
			X(sx).Y(sy).Z(2).
			ID(spec.id)
		layers = append(layers, layer)
	}
	return layers
}

