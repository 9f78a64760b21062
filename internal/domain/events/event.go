package events

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent represents a domain event
type DomainEvent interface {
	EventID() string
	EventType() string
	OccurredAt() time.Time
	// CorrelationID links the event to the request that caused it.
	CorrelationID() string
}

// BaseEvent provides common event properties
type BaseEvent struct {
	eventID       string
	eventType     string
	occurredAt    time.Time
	correlationID string
}

// NewBaseEvent creates a new base event
func NewBaseEvent(eventType, correlationID string) BaseEvent {
	return BaseEvent{
		eventID:       uuid.NewString(),
		eventType:     eventType,
		occurredAt:    time.Now().UTC(),
		correlationID: correlationID,
	}
}

func (e BaseEvent) EventID() string {
	return e.eventID
}

func (e BaseEvent) EventType() string {
	return e.eventType
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.occurredAt
}

func (e BaseEvent) CorrelationID() string {
	return e.correlationID
}
