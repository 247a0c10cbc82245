package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPickStarted    EventType = "PickStarted"
	EventQueryChanged   EventType = "QueryChanged"
	EventFilterApplied  EventType = "FilterApplied"
	EventHighlightMoved EventType = "HighlightMoved"
	EventSourceError    EventType = "SourceError"
	EventPickFinished   EventType = "PickFinished"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventConfigSaved    EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PickStartedEvent is emitted once when the interactive loop begins
type PickStartedEvent struct {
	CandidateCount int
}

func (e PickStartedEvent) Type() EventType { return EventPickStarted }

// QueryChangedEvent is emitted whenever the query text changes
type QueryChangedEvent struct {
	Query string
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// FilterAppliedEvent is emitted after a filter pass completes
type FilterAppliedEvent struct {
	Query      string
	MatchCount int
}

func (e FilterAppliedEvent) Type() EventType { return EventFilterApplied }

// HighlightMovedEvent is emitted when the highlight changes position
type HighlightMovedEvent struct {
	OldIndex int
	NewIndex int
}

func (e HighlightMovedEvent) Type() EventType { return EventHighlightMoved }

// SourceErrorEvent is emitted when the candidate source fails to deliver
type SourceErrorEvent struct {
	Message string
	Err     error
}

func (e SourceErrorEvent) Type() EventType { return EventSourceError }

// PickFinishedEvent is emitted when the loop reaches its terminal state
type PickFinishedEvent struct {
	Query string
}

func (e PickFinishedEvent) Type() EventType { return EventPickFinished }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
