package pubsub

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// ContinuousListener feeds broker events into a Bubble Tea program one
// at a time. Each Listen call yields a command for the next event, so
// the model re-arms the listener after handling each message.
type ContinuousListener[T any] struct {
	ctx context.Context
	ch  <-chan Event[T]
}

// NewContinuousListener subscribes to the broker. Cancelling ctx ends
// the subscription.
func NewContinuousListener[T any](ctx context.Context, broker *Broker[T]) *ContinuousListener[T] {
	return &ContinuousListener[T]{
		ctx: ctx,
		ch:  broker.Subscribe(ctx),
	}
}

// Listen returns a command that blocks until the next event arrives
// and delivers it as a tea.Msg of type Event[T].
func (l *ContinuousListener[T]) Listen() tea.Cmd {
	return ListenCmd(l.ctx, l.ch)
}

// ListenCmd waits for one event on a bare channel. The command
// resolves to nil when ctx is cancelled or the channel closes, which
// ends the listen loop without a message.
func ListenCmd[T any](ctx context.Context, ch <-chan Event[T]) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return event
		}
	}
}
