package tableui

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/wesen/ptable/internal/elements"
)

// datasetLoadedMsg delivers the decoded element list.
type datasetLoadedMsg struct {
	elements []elements.ChemicalElement
}

// datasetFailedMsg delivers the terminal load failure.
type datasetFailedMsg struct {
	err error
}

// loadDataset returns the one-shot fetch command. Its resolution drives
// the single Loading → {Ready|Failure} transition; no retry, no
// timeout, no cancellation.
func (m Model) loadDataset() tea.Cmd {
	loader, source := m.loader, m.source
	return func() tea.Msg {
		els, err := loader.Load(context.Background(), source)
		if err != nil {
			return datasetFailedMsg{err: err}
		}
		return datasetLoadedMsg{elements: els}
	}
}
