package tableui

import (
	"image"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/wesen/ptable/internal/dataset"
	"github.com/wesen/ptable/internal/elements"
)

// sessionState is the model lifecycle. It starts at stateLoading and
// transitions exactly once, to stateReady or stateFailure, when the
// dataset fetch resolves.
type sessionState int

const (
	stateLoading sessionState = iota
	stateFailure
	stateReady
)

// Model is the main application state. While stateReady, the table is
// immutable; only the highlight target and camera change.
type Model struct {
	state sessionState
	err   error

	table        *elements.Table
	elementCount int
	highlight    Highlight

	width, height  int
	mouseX, mouseY int
	camX, camY     int

	source string
	loader *dataset.Loader
	logger *slog.Logger
	keys   keyMap
}

// NewModel creates the initial loading-state model.
func NewModel(loader *dataset.Loader, source string, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return Model{
		state:  stateLoading,
		source: source,
		loader: loader,
		logger: logger,
		keys:   defaultKeyMap(),
	}
}

// Init implements tea.Model: it issues the single dataset fetch.
func (m Model) Init() tea.Cmd {
	return m.loadDataset()
}

// canvasRect computes the table canvas region. Must match the layout
// in View.
func (m Model) canvasRect() image.Rectangle {
	w := m.width - panelWidth
	h := m.height - statusHeight
	if w < 0 {
		w = 0
	}
	if h < headerHeight {
		h = headerHeight
	}
	return image.Rect(0, headerHeight, w, h)
}

// clampCamera keeps the camera inside the world bounds, allowing the
// lattice to be panned edge to edge but no further.
func (m *Model) clampCamera() {
	world := metrics.Bounds()
	canvas := m.canvasRect()

	maxX := world.Dx() - canvas.Dx()
	maxY := world.Dy() - canvas.Dy()
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	if m.camX < 0 {
		m.camX = 0
	}
	if m.camX > maxX {
		m.camX = maxX
	}
	if m.camY < 0 {
		m.camY = 0
	}
	if m.camY > maxY {
		m.camY = maxY
	}
}
