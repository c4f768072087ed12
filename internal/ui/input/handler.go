package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"gitjump/internal/ui/input/modes"
	"gitjump/internal/ui/input/types"
)

// Handler is the mode transition table: it looks up the handler for the
// current mode and returns the actions a key triggers there. It holds no mode
// of its own; the session does.
type Handler struct {
	modes map[types.Mode]types.ModeHandler
}

func New(keys types.KeyMap) *Handler {
	h := &Handler{
		modes: make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeNavigation] = modes.NewNavigationMode(keys)
	h.modes[types.ModeEditing] = modes.NewEditingMode(keys)

	return h
}

// HandleKey returns the actions k triggers in mode
func (h *Handler) HandleKey(mode types.Mode, k types.Key) []types.Action {
	handler := h.modes[mode]
	if handler == nil {
		return nil
	}
	return handler.HandleKey(k)
}

// Mode returns the handler registered for mode
func (h *Handler) Mode(mode types.Mode) types.ModeHandler {
	return h.modes[mode]
}

// FromTea classifies a bubbletea key message
func FromTea(msg tea.KeyMsg) types.Key {
	if msg.Alt {
		return types.Key{Type: types.KeyOther, Name: msg.String()}
	}

	switch msg.Type {
	case tea.KeyRunes:
		return types.Key{Type: types.KeyRune, Runes: msg.Runes}
	case tea.KeySpace:
		return types.Rune(' ')
	case tea.KeyUp:
		return types.Key{Type: types.KeyUp}
	case tea.KeyDown:
		return types.Key{Type: types.KeyDown}
	case tea.KeyEnter:
		return types.Key{Type: types.KeyEnter}
	case tea.KeyEsc:
		return types.Key{Type: types.KeyEscape}
	case tea.KeyBackspace, tea.KeyCtrlH:
		return types.Key{Type: types.KeyBackspace}
	case tea.KeyCtrlC:
		return types.Key{Type: types.KeyInterrupt}
	default:
		return types.Key{Type: types.KeyOther, Name: msg.String()}
	}
}
