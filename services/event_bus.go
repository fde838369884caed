package services

import (
	"context"
	"sync"

	"togedog_server/models"
)

// EventHandler consumes one lifecycle event. An error aborts the publish and
// propagates to the publisher.
type EventHandler func(ctx context.Context, event models.LifecycleEvent) error

// EventPublisher is the side the matching lifecycle depends on.
type EventPublisher interface {
	Publish(ctx context.Context, event models.LifecycleEvent) error
}

// EventBus is an in-process publish/subscribe dispatcher. Publishing runs
// every handler registered for the event's case synchronously, in
// registration order, on the publisher's goroutine. There is no persistence
// and no retry: if the process dies mid-publish the remaining cleanup must be
// reconciled out of band.
type EventBus struct {
	mu       sync.RWMutex
	handlers map[models.EventCase][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[models.EventCase][]EventHandler)}
}

// Subscribe registers a handler for one event case.
func (b *EventBus) Subscribe(eventCase models.EventCase, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventCase] = append(b.handlers[eventCase], handler)
}

// Publish delivers the event to every handler for its case. The first
// handler error stops delivery and is returned to the publisher.
func (b *EventBus) Publish(ctx context.Context, event models.LifecycleEvent) error {
	b.mu.RLock()
	handlers := make([]EventHandler, len(b.handlers[event.Case]))
	copy(handlers, b.handlers[event.Case])
	b.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			return err
		}
	}
	return nil
}
