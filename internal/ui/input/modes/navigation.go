package modes

import (
	"github.com/charmbracelet/bubbles/key"

	"gitjump/internal/ui/input/types"
)

// NavigationMode is the initial mode: keys are commands, not search text
type NavigationMode struct {
	keys types.KeyMap
}

func NewNavigationMode(keys types.KeyMap) *NavigationMode {
	return &NavigationMode{keys: keys}
}

func (m *NavigationMode) Name() string {
	return "navigation"
}

func (m *NavigationMode) Bindings() []key.Binding {
	return []key.Binding{m.keys.Edit, m.keys.Up, m.keys.Down, m.keys.Confirm, m.keys.Quit}
}

func (m *NavigationMode) HandleKey(k types.Key) []types.Action {
	switch {
	case key.Matches(k, m.keys.Interrupt):
		return []types.Action{types.QuitAction{Force: true}}
	case key.Matches(k, m.keys.Edit):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeEditing}}
	case key.Matches(k, m.keys.Quit):
		return []types.Action{types.QuitAction{}}
	}
	return sharedActions(m.keys, k)
}

// sharedActions handles the keys that behave the same in every mode
func sharedActions(keys types.KeyMap, k types.Key) []types.Action {
	switch {
	case key.Matches(k, keys.Confirm):
		return []types.Action{types.ConfirmAction{}}
	case key.Matches(k, keys.Up):
		return []types.Action{types.NavigateAction{Direction: types.DirectionUp}}
	case key.Matches(k, keys.Down):
		return []types.Action{types.NavigateAction{Direction: types.DirectionDown}}
	}
	return nil
}
