package types

// Direction is a cursor movement
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
)

// Navigation actions
type NavigateAction struct {
	Direction Direction
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Query edit actions
type AppendRuneAction struct {
	Rune rune
}

func (a AppendRuneAction) Type() string { return "append_rune" }

type DeleteRuneAction struct{}

func (a DeleteRuneAction) Type() string { return "delete_rune" }

// ConfirmAction hands the highlighted item over and ends the session
type ConfirmAction struct{}

func (a ConfirmAction) Type() string { return "confirm" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for the quit key
}

func (a QuitAction) Type() string { return "quit" }
