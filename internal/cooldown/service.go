package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/CoinQuest_Go/internal/domain"
)

// Repository is the read side the cooldown status needs
type Repository interface {
	GetProfileByAuthID(ctx context.Context, authID string) (*domain.Profile, error)
	GetAdCooldowns(ctx context.Context, userID string) (map[string]time.Time, error)
}

// Status reports eligibility for every cooldown-gated action of a user
type Status struct {
	DailyReward Eligibility
	Spin        Eligibility
	Ads         map[string]Eligibility
	EvaluatedAt time.Time
}

// Service exposes cooldown state for display
type Service interface {
	GetStatus(ctx context.Context, authID string) (*Status, error)
}

type service struct {
	repo   Repository
	config Config
	now    func() time.Time
}

// NewService creates a cooldown status service
func NewService(repo Repository, config Config) Service {
	return &service{
		repo:   repo,
		config: config,
		now:    time.Now,
	}
}

func (s *service) GetStatus(ctx context.Context, authID string) (*Status, error) {
	profile, err := s.repo.GetProfileByAuthID(ctx, authID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetProfileFailed, err)
	}

	slots, err := s.repo.GetAdCooldowns(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetAdCooldownsFailed, err)
	}

	now := s.now()
	status := &Status{
		DailyReward: s.config.Evaluate(domain.ActionDailyReward, profile.LastDailyReward, now),
		Spin:        s.config.Evaluate(domain.ActionSpin, profile.LastSpin, now),
		Ads:         make(map[string]Eligibility, len(domain.AdSlots)),
		EvaluatedAt: now,
	}
	for _, slot := range domain.AdSlots {
		var last *time.Time
		if ts, ok := slots[slot]; ok {
			last = &ts
		}
		status.Ads[slot] = s.config.Evaluate(domain.ActionAd, last, now)
	}
	return status, nil
}
