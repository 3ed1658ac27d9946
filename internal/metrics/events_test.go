package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/event"
)

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)
	ctx := context.Background()

	usersBefore := testutil.ToFloat64(UsersProvisioned)
	assignedBefore := testutil.ToFloat64(ItemsAssigned)
	consumedBefore := testutil.ToFloat64(EventsPublished.WithLabelValues(string(event.ItemConsumed)))

	require.NoError(t, bus.Publish(ctx, event.NewUserCreatedEvent(domain.User{ID: 1, Username: "a"})))
	require.NoError(t, bus.Publish(ctx, event.NewItemAssignedEvent(1, 2, 5)))
	require.NoError(t, bus.Publish(ctx, event.NewItemActionEvent(domain.ActionConsume, 1, 1,
		domain.ActionResult{ItemID: 2, Stats: domain.UserStats{HP: 100}})))

	assert.Equal(t, usersBefore+1, testutil.ToFloat64(UsersProvisioned))
	assert.Equal(t, assignedBefore+5, testutil.ToFloat64(ItemsAssigned))
	assert.Equal(t, consumedBefore+1, testutil.ToFloat64(EventsPublished.WithLabelValues(string(event.ItemConsumed))))
}

func TestRecordAction(t *testing.T) {
	before := testutil.ToFloat64(InventoryActions.WithLabelValues("consume", ResultSuccess))
	RecordAction("consume", ResultSuccess)
	assert.Equal(t, before+1, testutil.ToFloat64(InventoryActions.WithLabelValues("consume", ResultSuccess)))
}
