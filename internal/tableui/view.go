package tableui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wesen/ptable/pkg/tealayout"
)

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.width == 0 || m.height == 0 {
		return tea.NewView("")
	}

	var layers []*lipgloss.Layer

	switch m.state {
	case stateLoading:
		layers = append(layers,
			tealayout.FillLayer(fullRegion(m), bgStyle, "bg", 0),
			tealayout.CenteredLayer("Loading periodic table…", m.width, m.height, overlayBoxStyle),
		)

	case stateFailure:
		// Terminal failure: the whole-page message replaces the table.
		content := "DATASET ERROR\n\n" + m.err.Error()
		layers = append(layers,
			tealayout.FillLayer(fullRegion(m), bgStyle, "bg", 0),
			tealayout.CenteredLayer(content, m.width, m.height, failureBoxStyle),
		)

	case stateReady:
		layers = m.readyLayers()
	}

	comp := lipgloss.NewCompositor(layers...)
	canvas := lipgloss.NewCanvas(m.width, m.height)
	canvas.Compose(comp)

	v := tea.NewView(canvas.Render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

// readyLayers composes the full table screen: header, status bar,
// detail panel, and the pannable table canvas.
func (m Model) readyLayers() []*lipgloss.Layer {
	layout := tealayout.NewBuilder(m.width, m.height).
		TopFixed("header", headerHeight).
		BottomFixed("status", statusHeight).
		RightFixed("panel", panelWidth).
		Remaining("canvas").
		Build()

	canvasRegion := layout.Get("canvas")
	panelRegion := layout.Get("panel")
	viewport := canvasRegion.Rect

	layers := []*lipgloss.Layer{
		tealayout.FillLayer(layout.Get("header"), headerStyle, "header-bg", 0),
		tealayout.FillLayer(canvasRegion, bgStyle, "canvas-bg", 0),
		tealayout.FillLayer(layout.Get("status"), statusStyle, "status-bg", 0),
		tealayout.HeaderLayer(
			" PTABLE  │  hover: element · group · period  │  ←↑↓→ pan  [0] reset  │  [q]uit",
			m.width, headerStyle,
		),
		tealayout.StatusLayer(
			fmt.Sprintf(" Mouse: (%d,%d)  Cam: (%d,%d)  Hover: %s  Elements: %d",
				m.mouseX, m.mouseY, m.camX, m.camY, m.highlight, m.elementCount),
			m.width, m.height-statusHeight, statusStyle,
		),
		buildBackdropLayer(m.camX, m.camY, viewport, m.highlight),
	}

	layers = append(layers, buildCellLayers(m.table, m.camX, m.camY, viewport, m.highlight)...)
	layers = append(layers, buildPlaceholderLayers(m.camX, m.camY, viewport, m.highlight)...)

	pr := panelRegion.Rect
	if pr.Dx() > 0 && pr.Dy() > 0 {
		layers = append(layers,
			buildSeparatorLayer(pr.Min.X-1, pr.Min.Y, pr.Dy()),
			tealayout.FillLayer(panelRegion, panelLineStyle, "panel-bg", 0),
			buildDetailPanelLayer(m.table, m.highlight, pr.Min.X, pr.Min.Y, pr.Dx(), pr.Dy()),
		)
	}

	return layers
}

// fullRegion covers the whole terminal.
func fullRegion(m Model) tealayout.Region {
	l := tealayout.NewBuilder(m.width, m.height).Remaining("full").Build()
	return l.Get("full")
}
