package search

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookgrid/internal/domain"
	"bookgrid/internal/eventbus"
	"bookgrid/internal/openlibrary"
)

// eventCollector funnels search lifecycle events into one channel in
// publish order.
type eventCollector struct {
	events chan eventbus.DomainEvent
}

func collectEvents(bus eventbus.EventBus) *eventCollector {
	c := &eventCollector{events: make(chan eventbus.DomainEvent, 32)}
	forward := func(e eventbus.DomainEvent) { c.events <- e }
	bus.Subscribe(eventbus.EventSearchStarted, forward)
	bus.Subscribe(eventbus.EventSearchCompleted, forward)
	bus.Subscribe(eventbus.EventSearchFailed, forward)
	bus.Subscribe(eventbus.EventSearchCleared, forward)
	return c
}

func (c *eventCollector) next(t *testing.T) eventbus.DomainEvent {
	t.Helper()
	select {
	case e := <-c.events:
		return e
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func (c *eventCollector) expectSilence(t *testing.T, d time.Duration) {
	t.Helper()
	select {
	case e := <-c.events:
		t.Fatalf("unexpected event %T (%v)", e, e.Type())
	case <-time.After(d):
	}
}

func newTestCoordinator(t *testing.T, handler http.HandlerFunc) (*Coordinator, *eventCollector) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	bus := eventbus.New()
	t.Cleanup(bus.Close)

	client := openlibrary.NewClient(server.URL, "", "")
	coordinator := NewCoordinator(bus, client)
	t.Cleanup(coordinator.Close)

	return coordinator, collectEvents(bus)
}

func testParams(query string) domain.SearchParams {
	return domain.SearchParams{
		QueryText: query,
		Field:     domain.FieldTitle,
		Page:      1,
		PageSize:  12,
	}
}

func TestEmptyQueryClearsWithoutRequest(t *testing.T) {
	var hits int32
	coordinator, events := newTestCoordinator(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	})

	gen := coordinator.Search(testParams("   \t "))

	cleared, ok := events.next(t).(eventbus.SearchClearedEvent)
	require.True(t, ok, "expected SearchClearedEvent")
	assert.Equal(t, gen, cleared.Generation)
	events.expectSilence(t, 150*time.Millisecond)
	assert.Zero(t, atomic.LoadInt32(&hits), "no request should be issued")
}

func TestSearchMapsFieldAndPagination(t *testing.T) {
	var got atomic.Value
	coordinator, events := newTestCoordinator(t, func(w http.ResponseWriter, r *http.Request) {
		got.Store(r.URL.Query())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"numFound": 3,
			"docs": [
				{"key": "/works/OL1W", "title": "The Hobbit", "author_name": ["J. R. R. Tolkien"], "first_publish_year": 1937, "cover_i": 12},
				{"key": "/works/OL2W", "title": "The Fellowship of the Ring", "author_name": ["J. R. R. Tolkien"]},
				{"key": "/works/OL3W", "title": "The Silmarillion", "author_name": ["J. R. R. Tolkien"]}
			]
		}`))
	})

	params := testParams("Tolkien")
	params.Field = domain.FieldAuthor
	params.Language = "eng"
	params.Page = 2
	gen := coordinator.Search(params)

	started, ok := events.next(t).(eventbus.SearchStartedEvent)
	require.True(t, ok, "expected SearchStartedEvent")
	assert.Equal(t, gen, started.Generation)

	completed, ok := events.next(t).(eventbus.SearchCompletedEvent)
	require.True(t, ok, "expected SearchCompletedEvent")
	assert.Equal(t, gen, completed.Generation)
	assert.Len(t, completed.Books, 3)
	assert.Equal(t, 3, completed.TotalFound)
	assert.Equal(t, "The Hobbit", completed.Books[0].Title)
	assert.Equal(t, []string{"J. R. R. Tolkien"}, completed.Books[0].Authors)
	require.NotNil(t, completed.Books[0].FirstPublishYear)
	assert.Equal(t, 1937, *completed.Books[0].FirstPublishYear)

	query := got.Load().(url.Values)
	assert.Equal(t, "Tolkien", query.Get("author"))
	assert.Equal(t, "eng", query.Get("language"))
	assert.Equal(t, "2", query.Get("page"))
	assert.Equal(t, "12", query.Get("limit"))
	assert.Empty(t, query.Get("q"))

	// totalPages = ceil(numFound / pageSize)
	state := domain.SearchState{TotalFound: completed.TotalFound}
	assert.Equal(t, 1, state.TotalPages(12))
	assert.Equal(t, 1, state.TotalPages(8))
	state.TotalFound = 25
	assert.Equal(t, 3, state.TotalPages(12))
}

func TestServerErrorPublishesFailure(t *testing.T) {
	coordinator, events := newTestCoordinator(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	gen := coordinator.Search(testParams("dune"))

	_, ok := events.next(t).(eventbus.SearchStartedEvent)
	require.True(t, ok, "expected SearchStartedEvent")

	failed, ok := events.next(t).(eventbus.SearchFailedEvent)
	require.True(t, ok, "expected SearchFailedEvent")
	assert.Equal(t, gen, failed.Generation)
	assert.Contains(t, failed.Message, "HTTP 500")
}

func TestNumFoundFallbackUsesFilteredCount(t *testing.T) {
	coordinator, events := newTestCoordinator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"docs": [
			{"key": "/works/OL1W", "title": "A", "first_publish_year": 2000},
			{"key": "/works/OL2W", "title": "B", "first_publish_year": 1980}
		]}`))
	})

	params := testParams("a")
	params.YearFrom = intp(1990)
	coordinator.Search(params)

	events.next(t) // started
	completed, ok := events.next(t).(eventbus.SearchCompletedEvent)
	require.True(t, ok, "expected SearchCompletedEvent")
	assert.Len(t, completed.Books, 1)
	assert.Equal(t, 1, completed.TotalFound, "missing numFound falls back to filtered count")
}

func TestYearFilterKeepsServerTotal(t *testing.T) {
	coordinator, events := newTestCoordinator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"numFound": 300, "docs": [
			{"key": "/works/OL1W", "title": "A", "first_publish_year": 1990},
			{"key": "/works/OL2W", "title": "B", "first_publish_year": 2000},
			{"key": "/works/OL3W", "title": "C", "first_publish_year": 2010}
		]}`))
	})

	params := testParams("a")
	params.YearFrom = intp(1995)
	params.YearTo = intp(2005)
	coordinator.Search(params)

	events.next(t) // started
	completed, ok := events.next(t).(eventbus.SearchCompletedEvent)
	require.True(t, ok, "expected SearchCompletedEvent")
	require.Len(t, completed.Books, 1)
	assert.Equal(t, 2000, *completed.Books[0].FirstPublishYear)
	assert.Equal(t, 300, completed.TotalFound, "server total is kept, not the filtered count")
}

func TestSupersessionCancelsPriorRequest(t *testing.T) {
	var requests int32
	coordinator, events := newTestCoordinator(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&requests, 1) == 1 {
			// First request hangs until its context is cancelled.
			<-r.Context().Done()
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"numFound": 1, "docs": [{"key": "/works/OL9W", "title": "Second"}]}`))
	})

	gen1 := coordinator.Search(testParams("first"))
	started1, ok := events.next(t).(eventbus.SearchStartedEvent)
	require.True(t, ok, "expected SearchStartedEvent")
	require.Equal(t, gen1, started1.Generation)

	gen2 := coordinator.Search(testParams("second"))
	require.Greater(t, gen2, gen1)

	started2, ok := events.next(t).(eventbus.SearchStartedEvent)
	require.True(t, ok, "expected second SearchStartedEvent")
	assert.Equal(t, gen2, started2.Generation)

	completed, ok := events.next(t).(eventbus.SearchCompletedEvent)
	require.True(t, ok, "expected SearchCompletedEvent")
	assert.Equal(t, gen2, completed.Generation)
	assert.Equal(t, "Second", completed.Books[0].Title)

	// The cancelled first request must stay silent: no failure, no
	// late completion.
	events.expectSilence(t, 250*time.Millisecond)
}

func TestCloseCancelsOutstandingRequest(t *testing.T) {
	coordinator, events := newTestCoordinator(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	coordinator.Search(testParams("hang"))
	_, ok := events.next(t).(eventbus.SearchStartedEvent)
	require.True(t, ok, "expected SearchStartedEvent")

	coordinator.Close()
	events.expectSilence(t, 250*time.Millisecond)
}
