package repo

import (
	"github.com/Tupsu-jy/star-retriever/internal/domain/events"
)

// Event types
const (
	EventTypeStarredRepositoriesFetched = "repository.starred_fetched"
)

// StarredRepositoriesFetchedEvent is raised after a starred listing was normalized
type StarredRepositoriesFetchedEvent struct {
	events.BaseEvent
	RepositoryCount int
}

// NewStarredRepositoriesFetchedEvent creates a new StarredRepositoriesFetchedEvent.
// requestID ties the event to the HTTP request that produced it.
func NewStarredRepositoriesFetchedEvent(requestID string, count int) *StarredRepositoriesFetchedEvent {
	return &StarredRepositoriesFetchedEvent{
		BaseEvent:       events.NewBaseEvent(EventTypeStarredRepositoriesFetched, requestID),
		RepositoryCount: count,
	}
}
