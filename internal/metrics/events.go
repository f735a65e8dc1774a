package metrics

import (
	"context"

	"github.com/osse101/CoinQuest_Go/internal/domain"
	"github.com/osse101/CoinQuest_Go/internal/event"
	"github.com/osse101/CoinQuest_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	bus.Subscribe(event.WalletUpdated, e.HandleEvent)
	bus.Subscribe(event.RedeemUpdated, e.HandleEvent)
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch p := evt.Payload.(type) {
	case domain.WalletUpdatedPayload:
		if p.Delta > 0 {
			CoinsCredited.WithLabelValues(string(p.Source)).Add(float64(p.Delta))
		} else if p.Delta < 0 {
			CoinsDebited.WithLabelValues(string(p.Source)).Add(float64(-p.Delta))
		}
	case domain.RedeemUpdatedPayload:
		RedeemTransitions.WithLabelValues(string(p.State)).Inc()
	}

	logger.FromContext(ctx).Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
