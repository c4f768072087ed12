package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventRepoDiscovered EventType = "RepoDiscovered"
	EventError          EventType = "Error"
	EventScanStarted    EventType = "ScanStarted"
	EventScanCompleted  EventType = "ScanCompleted"
	EventItemChosen     EventType = "ItemChosen"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// RepoDiscoveredEvent is emitted when a new repository is found
type RepoDiscoveredEvent struct {
	Repo Item
}

func (e RepoDiscoveredEvent) Type() EventType { return EventRepoDiscovered }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ScanStartedEvent is emitted when repository scanning begins
type ScanStartedEvent struct {
	Paths []string
}

func (e ScanStartedEvent) Type() EventType { return EventScanStarted }

// ScanCompletedEvent is emitted when repository scanning finishes
type ScanCompletedEvent struct {
	ReposFound int
}

func (e ScanCompletedEvent) Type() EventType { return EventScanCompleted }

// ItemChosenEvent is emitted when the picker hands an item to the shell
type ItemChosenEvent struct {
	Item Item
	Err  error // delivery error, nil on success
}

func (e ItemChosenEvent) Type() EventType { return EventItemChosen }
