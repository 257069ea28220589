// Package search owns the request lifecycle: at most one request is in
// flight at a time, a new search supersedes and cancels the previous
// one, and results are post-filtered by year before publication.
package search

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"bookgrid/internal/domain"
	"bookgrid/internal/eventbus"
	"bookgrid/internal/logger"
	"bookgrid/internal/openlibrary"
)

// Coordinator issues search requests and publishes lifecycle events on
// the bus. State mutation stays in the UI; the coordinator only decides
// what (if anything) goes out on the wire.
type Coordinator struct {
	bus    eventbus.EventBus
	client *openlibrary.Client
	log    *logrus.Entry

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
}

// NewCoordinator creates a new search coordinator
func NewCoordinator(bus eventbus.EventBus, client *openlibrary.Client) *Coordinator {
	return &Coordinator{
		bus:    bus,
		client: client,
		log:    logger.With("search"),
	}
}

// Search starts a request for params, cancelling any still-pending prior
// request first. An empty or whitespace-only query performs no request
// and publishes SearchClearedEvent instead. Returns the generation
// assigned to this search so callers can drop stale events.
func (c *Coordinator) Search(params domain.SearchParams) uint64 {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.generation++
	gen := c.generation

	if params.IsEmpty() {
		c.mu.Unlock()
		c.bus.Publish(eventbus.SearchClearedEvent{Generation: gen})
		return gen
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.mu.Unlock()

	c.log.WithFields(logrus.Fields{
		"query": params.Query(),
		"field": params.Field,
		"page":  params.Page,
	}).Info("search started")

	c.bus.Publish(eventbus.SearchStartedEvent{Generation: gen, Params: params})

	go c.run(ctx, gen, params)
	return gen
}

// Generation returns the current generation counter.
func (c *Coordinator) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// Close cancels any outstanding request. Idempotent; meant for shutdown
// so a late response cannot touch disposed state.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Coordinator) run(ctx context.Context, gen uint64, params domain.SearchParams) {
	page, err := c.client.Search(ctx, params)

	c.mu.Lock()
	current := gen == c.generation
	if current {
		c.cancel = nil
	}
	c.mu.Unlock()

	// A superseded request stays silent no matter how it resolved; its
	// late result must not overwrite newer state.
	if !current {
		return
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		c.log.WithError(err).Warn("search failed")
		c.bus.Publish(eventbus.SearchFailedEvent{
			Generation: gen,
			Message:    fmt.Sprintf("search failed: %v", err),
		})
		return
	}

	books := FilterByYear(page.Books, params.YearFrom, params.YearTo)
	total := page.Total
	if !page.HasTotal {
		total = len(books)
	}

	c.log.WithFields(logrus.Fields{
		"returned": len(page.Books),
		"kept":     len(books),
		"total":    total,
	}).Info("search completed")

	c.bus.Publish(eventbus.SearchCompletedEvent{
		Generation: gen,
		Books:      books,
		TotalFound: total,
	})
}
