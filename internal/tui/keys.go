package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	CopyItem  key.Binding
	CopyShare key.Binding
	Calendar  key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		CopyItem:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy item link")),
		CopyShare: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "copy share link")),
		Calendar:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "save .ics")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.CopyItem, k.CopyShare, k.Calendar, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
