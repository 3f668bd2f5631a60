package tableui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/wesen/ptable/internal/elements"
)

const panStep = 4

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampCamera()

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case datasetLoadedMsg:
		m.state = stateReady
		m.table = elements.BuildTable(msg.elements)
		m.elementCount = len(msg.elements)
		m.highlight = NoHighlight()
		m.logger.Info("table ready",
			"elements", m.elementCount,
			"positions", m.table.Len(),
		)

	case datasetFailedMsg:
		m.state = stateFailure
		m.err = msg.err
	}

	return m, nil
}

// handleKeys processes keyboard input.
func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.PanUp):
		m.camY -= panStep
	case key.Matches(msg, m.keys.PanDown):
		m.camY += panStep
	case key.Matches(msg, m.keys.PanLeft):
		m.camX -= panStep
	case key.Matches(msg, m.keys.PanRight):
		m.camX += panStep

	case key.Matches(msg, m.keys.Home):
		m.camX = 0
		m.camY = 0
	}

	m.clampCamera()
	return m, nil
}
