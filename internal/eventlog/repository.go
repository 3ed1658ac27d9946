package eventlog

import (
	"context"
	"time"
)

// Event is one persisted inventory event
type Event struct {
	ID        int64                  `json:"id"`
	EventType string                 `json:"event_type"`
	UserID    *int64                 `json:"user_id,omitempty"`
	Payload   map[string]interface{} `json:"payload"`
	CreatedAt time.Time              `json:"created_at"`
}

// Repository stores the event log
type Repository interface {
	// LogEvent appends an event
	LogEvent(ctx context.Context, eventType string, userID *int64, payload map[string]interface{}) error

	// GetEventsByUser returns a user's most recent events, newest first
	GetEventsByUser(ctx context.Context, userID int64, limit int) ([]Event, error)

	// CleanupOldEvents removes events created before cutoff
	CleanupOldEvents(ctx context.Context, cutoff time.Time) (int64, error)
}
