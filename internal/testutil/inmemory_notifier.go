package testutil

import (
	"context"
	"sync"

	"github.com/nvamotors/dealership-api/internal/notification"
)

// InMemoryNotifier implements notification.Notifier and records every
// dispatched event. DispatchAsync delivers synchronously so tests can
// assert on events without sleeping.
type InMemoryNotifier struct {
	mu     sync.Mutex
	events []notification.Event

	// Result is what Dispatch reports; defaults to delivered.
	Result bool
}

func NewInMemoryNotifier() *InMemoryNotifier {
	return &InMemoryNotifier{
		events: make([]notification.Event, 0),
		Result: true,
	}
}

func (n *InMemoryNotifier) Dispatch(ctx context.Context, event notification.Event) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
	return n.Result
}

func (n *InMemoryNotifier) DispatchAsync(event notification.Event) {
	n.Dispatch(context.Background(), event)
}

// Events returns a snapshot of everything dispatched so far.
func (n *InMemoryNotifier) Events() []notification.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notification.Event{}, n.events...)
}

func (n *InMemoryNotifier) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = n.events[:0]
}
