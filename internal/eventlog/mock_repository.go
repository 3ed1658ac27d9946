package eventlog

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) LogEvent(ctx context.Context, eventType string, userID *int64, payload map[string]interface{}) error {
	args := m.Called(ctx, eventType, userID, payload)
	return args.Error(0)
}

func (m *MockRepository) GetEventsByUser(ctx context.Context, userID int64, limit int) ([]Event, error) {
	args := m.Called(ctx, userID, limit)
	events, _ := args.Get(0).([]Event)
	return events, args.Error(1)
}

func (m *MockRepository) CleanupOldEvents(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}
