package tableui

import "charm.land/bubbles/v2/key"

// keyMap declares the application key bindings.
type keyMap struct {
	PanUp    key.Binding
	PanDown  key.Binding
	PanLeft  key.Binding
	PanRight key.Binding
	Home     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PanUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "pan up"),
		),
		PanDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "pan down"),
		),
		PanLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "pan left"),
		),
		PanRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "pan right"),
		),
		Home: key.NewBinding(
			key.WithKeys("0", "home"),
			key.WithHelp("0", "reset view"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
