package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchStarted   EventType = "SearchStarted"
	EventSearchCompleted EventType = "SearchCompleted"
	EventSearchFailed    EventType = "SearchFailed"
	EventSearchCleared   EventType = "SearchCleared"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchStartedEvent is emitted when a request is issued.
type SearchStartedEvent struct {
	Generation uint64
	Params     SearchParams
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchCompletedEvent is emitted when a request settles successfully.
// Books are already post-filtered by year; TotalFound is the server's
// count (or the filtered count when the server omitted one).
type SearchCompletedEvent struct {
	Generation uint64
	Books      []Book
	TotalFound int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted on a transport failure or non-2xx status.
// Cancelled requests never produce this event.
type SearchFailedEvent struct {
	Generation uint64
	Message    string
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// SearchClearedEvent is emitted when the query becomes empty and results
// are dropped without a request.
type SearchClearedEvent struct {
	Generation uint64
}

func (e SearchClearedEvent) Type() EventType { return EventSearchCleared }

// ErrorEvent is emitted for non-search errors worth surfacing.
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded.
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }
