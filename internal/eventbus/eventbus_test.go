package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesSubscriber(t *testing.T) {
	b := New()
	defer b.Close()

	received := make(chan DomainEvent, 1)
	b.Subscribe(EventSearchStarted, func(ev DomainEvent) {
		received <- ev
	})

	b.Publish(SearchStartedEvent{Generation: 3})

	select {
	case ev := <-received:
		started, ok := ev.(SearchStartedEvent)
		require.True(t, ok)
		assert.Equal(t, uint64(3), started.Generation)
	case <-time.After(2 * time.Second):
		t.Fatal("event not delivered")
	}
}

func TestEventsDeliveredInPublishOrder(t *testing.T) {
	b := New()
	defer b.Close()

	order := make(chan EventType, 3)
	record := func(ev DomainEvent) { order <- ev.Type() }
	b.Subscribe(EventSearchStarted, record)
	b.Subscribe(EventSearchCompleted, record)
	b.Subscribe(EventSearchCleared, record)

	b.Publish(SearchStartedEvent{Generation: 1})
	b.Publish(SearchCompletedEvent{Generation: 1})
	b.Publish(SearchClearedEvent{Generation: 2})

	want := []EventType{EventSearchStarted, EventSearchCompleted, EventSearchCleared}
	for _, wantType := range want {
		select {
		case got := <-order:
			assert.Equal(t, wantType, got)
		case <-time.After(2 * time.Second):
			t.Fatalf("missing %s event", wantType)
		}
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	defer b.Close()

	received := make(chan DomainEvent, 2)
	unsubscribe := b.Subscribe(EventSearchFailed, func(ev DomainEvent) {
		received <- ev
	})

	b.Publish(SearchFailedEvent{Generation: 1, Message: "first"})
	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("first event not delivered")
	}

	unsubscribe()
	b.Publish(SearchFailedEvent{Generation: 2, Message: "second"})

	select {
	case ev := <-received:
		t.Fatalf("unexpected delivery after unsubscribe: %v", ev)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHandlerPanicDoesNotKillDispatcher(t *testing.T) {
	b := New()
	defer b.Close()

	received := make(chan DomainEvent, 1)
	b.Subscribe(EventError, func(DomainEvent) { panic("handler bug") })
	b.Subscribe(EventError, func(ev DomainEvent) { received <- ev })

	b.Publish(ErrorEvent{Message: "boom"})

	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatcher stopped after handler panic")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	b := New()
	b.Close()
	b.Close()
}
