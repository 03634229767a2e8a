// Package pubsub provides the generic publish/subscribe plumbing that
// decouples background producers (the file watcher, the logger) from the
// Bubble Tea update loop.
package pubsub

import (
	"context"
	"sync"
	"time"
)

const defaultBuffer = 64

// EventType classifies what happened to the payload's subject.
type EventType string

const (
	CreatedEvent EventType = "created"
	UpdatedEvent EventType = "updated"
	DeletedEvent EventType = "deleted"
)

// Event is one published notification with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Broker fans events out to any number of subscribers. Publishing never
// blocks: a subscriber that stops draining its channel loses events
// rather than stalling the producer.
type Broker[T any] struct {
	mu          sync.RWMutex
	subscribers map[chan Event[T]]struct{}
	closed      bool
	buffer      int
}

// NewBroker creates a broker whose subscriber channels hold 64 events.
func NewBroker[T any]() *Broker[T] {
	return NewBrokerWithBuffer[T](defaultBuffer)
}

// NewBrokerWithBuffer creates a broker with a custom per-subscriber
// channel capacity.
func NewBrokerWithBuffer[T any](size int) *Broker[T] {
	return &Broker[T]{
		subscribers: make(map[chan Event[T]]struct{}),
		buffer:      size,
	}
}

// Subscribe registers a new subscriber. The returned channel closes
// when ctx is cancelled or the broker shuts down; subscribing to a
// closed broker yields an already-closed channel.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		ch := make(chan Event[T])
		close(ch)
		return ch
	}

	sub := make(chan Event[T], b.buffer)
	b.subscribers[sub] = struct{}{}
	go b.unsubscribeOnDone(ctx, sub)
	return sub
}

func (b *Broker[T]) unsubscribeOnDone(ctx context.Context, sub chan Event[T]) {
	<-ctx.Done()

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		// Close already shut this channel down.
		return
	}
	delete(b.subscribers, sub)
	close(sub)
}

// Publish delivers an event to every subscriber with room in its
// channel and drops it for the rest.
func (b *Broker[T]) Publish(eventType EventType, payload T) {
	event := Event[T]{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now(),
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}

	for sub := range b.subscribers {
		select {
		case sub <- event:
		default:
		}
	}
}

// Close shuts the broker down and closes every subscriber channel.
// Closing twice is a no-op, as is publishing afterwards.
func (b *Broker[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	for sub := range b.subscribers {
		close(sub)
	}
	b.subscribers = nil
}

// SubscriberCount returns the number of active subscribers.
func (b *Broker[T]) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
