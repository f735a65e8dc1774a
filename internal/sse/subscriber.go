package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/CoinQuest_Go/internal/event"
	"github.com/osse101/CoinQuest_Go/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for the user-facing event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.WalletUpdated, s.forward(EventTypeWalletUpdated))
	s.bus.Subscribe(event.RedeemUpdated, s.forward(EventTypeRedeemUpdated))

	slog.Info(LogMsgSubscriberReady,
		"types", []string{string(event.WalletUpdated), string(event.RedeemUpdated)})
}

func (s *Subscriber) forward(sseType string) event.Handler {
	return func(ctx context.Context, evt event.Event) error {
		authID := evt.AuthID()
		if authID == "" {
			return nil
		}
		s.hub.Publish(authID, sseType, evt.Payload)
		logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "event_type", sseType, "auth_id", authID)
		return nil
	}
}
