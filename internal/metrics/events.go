package metrics

import (
	"context"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/event"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all inventory events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, t := range []event.Type{
		event.UserCreated,
		event.ItemAssigned,
		event.ItemConsumed,
		event.ItemEquipped,
		event.ItemUnequipped,
		event.ItemDeleted,
	} {
		bus.Subscribe(t, e.HandleEvent)
	}
}

// HandleEvent updates metrics for one event
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch p := evt.Payload.(type) {
	case event.UserCreatedPayloadV1:
		UsersProvisioned.Inc()
	case event.ItemActionPayloadV1:
		switch evt.Type {
		case event.ItemAssigned:
			ItemsAssigned.Add(float64(p.Quantity))
		case event.ItemConsumed:
			HPAfterConsume.Observe(float64(p.Stats.HP))
		}
	default:
		logger.FromContext(ctx).Debug(LogMsgUnexpectedPayload, "type", evt.Type)
	}
	return nil
}

// RecordAction counts one inventory action outcome
func RecordAction(action, result string) {
	InventoryActions.WithLabelValues(action, result).Inc()
}
