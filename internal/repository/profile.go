package repository

import (
	"context"
	"time"

	"github.com/osse101/CoinQuest_Go/internal/domain"
)

// Profile defines the interface for profile persistence
type Profile interface {
	GetProfileByAuthID(ctx context.Context, authID string) (*domain.Profile, error)
	CreateProfile(ctx context.Context, authID, username string) (*domain.Profile, error)
	GetAdCooldowns(ctx context.Context, userID string) (map[string]time.Time, error)
}
