package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/eventlog"
)

var _ eventlog.Repository = (*Store)(nil)

// LogEvent appends one event. user_id carries no foreign key so history
// outlives the user row.
func (s *Store) LogEvent(ctx context.Context, eventType string, userID *int64, payload map[string]interface{}) error {
	if payload == nil {
		payload = map[string]interface{}{}
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO event_log (event_type, user_id, payload) VALUES ($1, $2, $3)`,
		eventType, userID, payload)
	if err != nil {
		return wrapErr(ErrMsgFailedToLogEvent, err)
	}
	return nil
}

// GetEventsByUser returns userID's events, newest first
func (s *Store) GetEventsByUser(ctx context.Context, userID int64, limit int) ([]eventlog.Event, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, event_type, user_id, payload, created_at
		FROM event_log
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetEvents, err)
	}

	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (eventlog.Event, error) {
		var e eventlog.Event
		err := row.Scan(&e.ID, &e.EventType, &e.UserID, &e.Payload, &e.CreatedAt)
		return e, err
	})
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetEvents, err)
	}
	return events, nil
}

// CleanupOldEvents deletes events created before cutoff
func (s *Store) CleanupOldEvents(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM event_log WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, wrapErr(ErrMsgFailedToCleanupEvents, err)
	}
	return tag.RowsAffected(), nil
}
