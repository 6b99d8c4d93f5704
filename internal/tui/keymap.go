package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding
	Home key.Binding
	End  key.Binding

	// Search
	Search      key.Binding
	CloseSearch key.Binding

	// Display toggles
	ToggleScores   key.Binding
	ToggleStatus   key.Binding
	ToggleCollapse key.Binding
	CycleTheme     key.Binding
	ToggleGroup    key.Binding

	// Application
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		CloseSearch: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc", "close search"),
		),
		ToggleScores: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "show/hide scores"),
		),
		ToggleStatus: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pass/fail chips"),
		),
		ToggleCollapse: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "collapse sidebar"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		ToggleGroup: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "expand category"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
