package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_EventLog(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	userID := int64(42)
	require.NoError(t, s.LogEvent(ctx, "item.assigned", &userID, map[string]interface{}{"item_id": 1, "quantity": 3}))
	require.NoError(t, s.LogEvent(ctx, "item.consumed", &userID, map[string]interface{}{"item_id": 1, "quantity": 1}))
	require.NoError(t, s.LogEvent(ctx, "user.created", nil, nil))

	events, err := s.GetEventsByUser(ctx, userID, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "item.consumed", events[0].EventType)
	assert.Equal(t, float64(1), events[0].Payload["quantity"])
	require.NotNil(t, events[0].UserID)
	assert.Equal(t, userID, *events[0].UserID)

	limited, err := s.GetEventsByUser(ctx, userID, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	deleted, err := s.CleanupOldEvents(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}
