package events_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/Tupsu-jy/star-retriever/internal/domain/events"
)

type testEvent struct {
	events.BaseEvent
}

func TestDispatch(t *testing.T) {
	d := events.NewDispatcher()

	var calls atomic.Int32
	d.Register("test.happened", func(ctx context.Context, e events.DomainEvent) error {
		calls.Add(1)
		return nil
	})
	d.Register("test.happened", func(ctx context.Context, e events.DomainEvent) error {
		calls.Add(1)
		return nil
	})

	e := testEvent{BaseEvent: events.NewBaseEvent("test.happened", "req-1")}
	if err := d.Dispatch(context.Background(), e); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if calls.Load() != 2 {
		t.Errorf("handler calls = %v, want 2", calls.Load())
	}
	if e.CorrelationID() != "req-1" {
		t.Errorf("CorrelationID = %v, want req-1", e.CorrelationID())
	}
	if e.EventID() == "" {
		t.Error("EventID should be generated")
	}
}

func TestDispatchNoHandlers(t *testing.T) {
	d := events.NewDispatcher()
	e := testEvent{BaseEvent: events.NewBaseEvent("test.unhandled", "")}

	if err := d.Dispatch(context.Background(), e); err != nil {
		t.Errorf("Dispatch() error = %v, want nil", err)
	}
}

func TestDispatchHandlerError(t *testing.T) {
	d := events.NewDispatcher()
	boom := errors.New("boom")
	d.Register("test.happened", func(ctx context.Context, e events.DomainEvent) error {
		return boom
	})

	err := d.Dispatch(context.Background(), testEvent{BaseEvent: events.NewBaseEvent("test.happened", "")})
	if !errors.Is(err, boom) {
		t.Errorf("Dispatch() error = %v, want wrapped boom", err)
	}
}
