package types

import "github.com/charmbracelet/bubbles/key"

// Mode represents an input mode
type Mode int

const (
	ModeNavigation Mode = iota
	ModeEditing
)

func (m Mode) String() string {
	switch m {
	case ModeNavigation:
		return "navigation"
	case ModeEditing:
		return "editing"
	default:
		return "unknown"
	}
}

// KeyType tags the kind of input event the picker consumes
type KeyType int

const (
	KeyOther KeyType = iota
	KeyRune
	KeyUp
	KeyDown
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyInterrupt
)

// Key is one classified input event. Runes is set only for KeyRune; a paste
// arrives as a single KeyRune with several runes. Name carries the terminal's
// name for keys the picker has no tag for (e.g. "tab", "ctrl+e").
type Key struct {
	Type  KeyType
	Runes []rune
	Name  string
}

// Rune is a convenience constructor for a single printable character
func Rune(r rune) Key {
	return Key{Type: KeyRune, Runes: []rune{r}}
}

// String returns the key name in the form key.Binding expects, so bindings
// can be matched against a Key with key.Matches.
func (k Key) String() string {
	switch k.Type {
	case KeyRune:
		return string(k.Runes)
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "esc"
	case KeyBackspace:
		return "backspace"
	case KeyInterrupt:
		return "ctrl+c"
	default:
		return k.Name
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey maps a key to the actions it triggers in this mode. A nil
	// result means the key is ignored.
	HandleKey(k Key) []Action

	// Bindings lists the keys shown in the help line for this mode
	Bindings() []key.Binding

	// Name returns the mode name for display
	Name() string
}
