package bootstrap

import (
	"log/slog"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/event"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/eventlog"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/inventory"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/metrics"
)

// InitializeEventSystem creates the in-process event bus
func InitializeEventSystem() event.Bus {
	bus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized)
	return bus
}

// RegisterEventHandlers sets up all event subscribers:
// - Stats initializer (gives each created user a stats row)
// - Metrics collector (event-based business metrics)
// - Event log (audit trail of inventory changes)
func RegisterEventHandlers(bus event.Bus, svc inventory.Service, audit eventlog.Service) {
	inventory.NewStatsInitializer(svc).Register(bus)
	slog.Info(LogMsgStatsInitializerRegistered)

	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	audit.Subscribe(bus)
	slog.Info(LogMsgEventLogRegistered)
}
