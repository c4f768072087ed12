package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the picker reacts to
type KeyMap struct {
	Edit      key.Binding
	Quit      key.Binding
	Escape    key.Binding
	Delete    key.Binding
	Confirm   key.Binding
	Up        key.Binding
	Down      key.Binding
	Interrupt key.Binding
}

// NewKeyMap builds the key map with the given rebindable navigation keys
func NewKeyMap(edit, quit string) KeyMap {
	return KeyMap{
		Edit:      key.NewBinding(key.WithKeys(edit), key.WithHelp(edit, "edit search")),
		Quit:      key.NewBinding(key.WithKeys(quit), key.WithHelp(quit, "quit")),
		Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "stop editing")),
		Delete:    key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "jump")),
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// DefaultKeyMap uses i to start editing and q to quit
func DefaultKeyMap() KeyMap {
	return NewKeyMap("i", "q")
}
