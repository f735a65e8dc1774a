package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/CoinQuest_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Event types
const (
	WalletUpdated Type = "wallet.updated"
	RedeemUpdated Type = "redeem.updated"
)

// NewWalletUpdatedEvent creates an event for a committed balance change
func NewWalletUpdatedEvent(userID, authID string, balance, delta int, source domain.Source) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    WalletUpdated,
		Payload: domain.WalletUpdatedPayload{
			UserID:  userID,
			AuthID:  authID,
			Balance: balance,
			Delta:   delta,
			Source:  source,
		},
	}
}

// NewRedeemUpdatedEvent creates an event for a redeem session state change
func NewRedeemUpdatedEvent(sessionID, authID string, state domain.RedeemSessionState) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RedeemUpdated,
		Payload: domain.RedeemUpdatedPayload{
			SessionID: sessionID,
			AuthID:    authID,
			State:     state,
		},
	}
}

// AuthID returns the auth subject the event is addressed to, if any
func (e Event) AuthID() string {
	switch p := e.Payload.(type) {
	case domain.WalletUpdatedPayload:
		return p.AuthID
	case domain.RedeemUpdatedPayload:
		return p.AuthID
	}
	return ""
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(ErrFmtHandlerErrors, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
