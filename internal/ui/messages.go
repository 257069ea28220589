package ui

import (
	"time"

	"bookgrid/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent on a timer for the loading spinner
type tickMsg time.Time

// debounceMsg fires when the quiescence window for a query edit expires.
// Only the message carrying the latest tag commits the query.
type debounceMsg struct {
	tag uint64
}

// detailPagerMsg contains the result of showing the detail pager
type detailPagerMsg struct {
	err error
}

// browserOpenedMsg contains the result of opening a URL in the browser
type browserOpenedMsg struct {
	url string
	err error
}
