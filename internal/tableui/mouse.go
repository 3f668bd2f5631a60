package tableui

import (
	"image"

	tea "charm.land/bubbletea/v2"
)

// handleMouse processes mouse events. Only motion matters: the hover
// position fully determines the highlight target, and leaving every
// interactive cell clears it to None.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	m.mouseX = mouse.X
	m.mouseY = mouse.Y

	if m.state != stateReady {
		return m, nil
	}
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return m, nil
	}

	canvasRect := m.canvasRect()
	if !image.Pt(mouse.X, mouse.Y).In(canvasRect) {
		m.highlight = NoHighlight()
		return m, nil
	}

	world := image.Pt(
		mouse.X-canvasRect.Min.X+m.camX,
		mouse.Y-canvasRect.Min.Y+m.camY,
	)
	m.highlight = m.targetAt(world)
	return m, nil
}

// targetAt resolves a world-space point to a highlight target: axis
// headers first, then the placeholder cells, then occupied element
// cells. Everything else is None.
func (m Model) targetAt(world image.Point) Highlight {
	if g, ok := metrics.ColAt(world); ok {
		return GroupHighlight(g)
	}
	if p, ok := metrics.RowAt(world); ok {
		if p <= periodCount {
			return PeriodHighlight(p)
		}
		// Left gutter beside the footnote rows has no period number.
		return NoHighlight()
	}

	pos, ok := metrics.CellAt(world)
	if !ok {
		return NoHighlight()
	}
	switch pos {
	case lanthanidePlaceholder:
		return LanthanideHighlight()
	case actinidePlaceholder:
		return ActinideHighlight()
	}
	if _, occupied := m.table.At(pos); occupied {
		return ElementHighlight(pos)
	}
	return NoHighlight()
}
