package bootstrap

import (
	"log/slog"

	"github.com/osse101/CoinQuest_Go/internal/event"
	"github.com/osse101/CoinQuest_Go/internal/metrics"
	"github.com/osse101/CoinQuest_Go/internal/profile"
	"github.com/osse101/CoinQuest_Go/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus       event.Bus
	ProfileService profile.Service
	Hub            *sse.Hub
}

// InitializeEventSystem creates the in-process event bus
func InitializeEventSystem() *event.MemoryBus {
	bus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized)
	return bus
}

// RegisterEventHandlers sets up all event subscribers:
// - Metrics collector (wallet and redeem counters)
// - Profile cache invalidation on balance changes
// - SSE forwarding to the owning user's streams
func RegisterEventHandlers(deps EventHandlerDependencies) {
	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	profile.RegisterInvalidation(deps.EventBus, deps.ProfileService)

	sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
	slog.Info(LogMsgSSESubscriberRegistered)
}
