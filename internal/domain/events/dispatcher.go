package events

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// EventHandler is a function that handles a domain event
type EventHandler func(ctx context.Context, event DomainEvent) error

// Dispatcher dispatches domain events to registered handlers
type Dispatcher struct {
	handlers map[string][]EventHandler
	mu       sync.RWMutex
}

// NewDispatcher creates a new event dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string][]EventHandler),
	}
}

// Register registers an event handler for a specific event type
func (d *Dispatcher) Register(eventType string, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.handlers[eventType] = append(d.handlers[eventType], handler)
}

// Dispatch runs every handler registered for the event's type concurrently
// and waits for all of them. Handler errors are logged and joined.
func (d *Dispatcher) Dispatch(ctx context.Context, event DomainEvent) error {
	d.mu.RLock()
	handlers := d.handlers[event.EventType()]
	d.mu.RUnlock()

	if len(handlers) == 0 {
		return nil
	}

	var wg sync.WaitGroup
	errs := make([]error, len(handlers))

	for i, handler := range handlers {
		wg.Add(1)
		go func(i int, h EventHandler) {
			defer wg.Done()
			if err := h(ctx, event); err != nil {
				zerolog.Ctx(ctx).Error().Err(err).
					Str("event_type", event.EventType()).
					Str("event_id", event.EventID()).
					Msg("event handler failed")
				errs[i] = err
			}
		}(i, handler)
	}

	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("dispatch %s: %w", event.EventType(), err)
	}
	return nil
}
