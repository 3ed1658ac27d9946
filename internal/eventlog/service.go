// Package eventlog keeps an append-only audit trail of inventory events.
package eventlog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/event"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/logger"
)

// LoggedTypes are the event types written to the log
var LoggedTypes = []event.Type{
	event.UserCreated,
	event.ItemAssigned,
	event.ItemConsumed,
	event.ItemEquipped,
	event.ItemUnequipped,
	event.ItemDeleted,
}

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger for every LoggedTypes entry
	Subscribe(bus event.Bus)

	// UserHistory returns a user's most recent events
	UserHistory(ctx context.Context, userID int64, limit int) ([]Event, error)

	// CleanupOldEvents removes events older than retention
	CleanupOldEvents(ctx context.Context, retention time.Duration) (int64, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Subscribe(bus event.Bus) {
	for _, eventType := range LoggedTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}
}

// handleEvent flattens the typed payload to a JSON object and stores it
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := payloadMap(evt.Payload)
	if err != nil {
		log.Warn(LogMsgEventPayloadInvalid, LogFieldType, evt.Type, LogFieldError, err)
		return nil
	}

	var userID *int64
	if uid, ok := payload[PayloadKeyUserID].(float64); ok {
		id := int64(uid)
		userID = &id
	}

	if err := s.repo.LogEvent(ctx, string(evt.Type), userID, payload); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldUserID, userID)
	return nil
}

func payloadMap(payload interface{}) (map[string]interface{}, error) {
	if m, ok := payload.(map[string]interface{}); ok {
		return m, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) UserHistory(ctx context.Context, userID int64, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.repo.GetEventsByUser(ctx, userID, limit)
}

func (s *service) CleanupOldEvents(ctx context.Context, retention time.Duration) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, s.now().Add(-retention))
}
