package inventory

import (
	"context"
	"fmt"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/event"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/logger"
)

// StatsInitializer gives every newly created user a stat ledger row
type StatsInitializer struct {
	svc Service
}

// NewStatsInitializer creates a StatsInitializer backed by svc
func NewStatsInitializer(svc Service) *StatsInitializer {
	return &StatsInitializer{svc: svc}
}

// Register subscribes to user.created
func (i *StatsInitializer) Register(bus event.Bus) {
	bus.Subscribe(event.UserCreated, i.HandleUserCreated)
}

// HandleUserCreated initializes stats for the user in the payload
func (i *StatsInitializer) HandleUserCreated(ctx context.Context, evt event.Event) error {
	payload, ok := evt.Payload.(event.UserCreatedPayloadV1)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", evt.Payload, evt.Type)
	}
	logger.FromContext(ctx).Debug(LogMsgStatsInitOnCreate, "user_id", payload.UserID)
	return i.svc.EnsureInitialized(ctx, payload.UserID)
}
