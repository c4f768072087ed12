package modes

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"

	"gitjump/internal/ui/input/types"
)

// EditingMode sends printable keys to the search query
type EditingMode struct {
	keys types.KeyMap
}

func NewEditingMode(keys types.KeyMap) *EditingMode {
	return &EditingMode{keys: keys}
}

func (m *EditingMode) Name() string {
	return "editing"
}

func (m *EditingMode) Bindings() []key.Binding {
	return []key.Binding{m.keys.Escape, m.keys.Up, m.keys.Down, m.keys.Confirm}
}

func (m *EditingMode) HandleKey(k types.Key) []types.Action {
	switch {
	case key.Matches(k, m.keys.Interrupt):
		return []types.Action{types.QuitAction{Force: true}}
	case key.Matches(k, m.keys.Escape):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNavigation}}
	case key.Matches(k, m.keys.Delete):
		return []types.Action{types.DeleteRuneAction{}}
	}

	if k.Type == types.KeyRune {
		var actions []types.Action
		for _, r := range k.Runes {
			if unicode.IsPrint(r) {
				actions = append(actions, types.AppendRuneAction{Rune: r})
			}
		}
		return actions
	}

	return sharedActions(m.keys, k)
}
