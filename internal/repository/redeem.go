package repository

import (
	"context"

	"github.com/osse101/CoinQuest_Go/internal/domain"
)

// Redeem defines the interface for the redeem catalog and sessions
type Redeem interface {
	GetProfileByAuthID(ctx context.Context, authID string) (*domain.Profile, error)
	ListRedeemCodes(ctx context.Context) ([]domain.RedeemCode, error)
	GetActiveRedeemSession(ctx context.Context, userID string) (*domain.RedeemSession, error)
	GetRedeemSession(ctx context.Context, sessionID string) (*domain.RedeemSession, error)
	BeginTx(ctx context.Context) (Tx, error)
}
