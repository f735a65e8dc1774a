package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/CoinQuest_Go/internal/domain"
	"github.com/osse101/CoinQuest_Go/internal/event"
	"github.com/osse101/CoinQuest_Go/internal/logger"
	"github.com/osse101/CoinQuest_Go/internal/repository"
)

// Service defines profile operations
type Service interface {
	GetProfile(ctx context.Context, authID string) (*domain.Profile, error)
	EnsureProfile(ctx context.Context, authID, username string) (*domain.Profile, error)
	Invalidate(authID string)
	InvalidateAll()
	GetCacheStats() CacheStats
}

type service struct {
	repo  repository.Profile
	cache *profileCache
}

// NewService creates a profile service with an expiring LRU cache
func NewService(repo repository.Profile, cacheCfg CacheConfig) Service {
	return &service{
		repo:  repo,
		cache: newProfileCache(cacheCfg),
	}
}

// GetProfile returns the cached profile or loads it
func (s *service) GetProfile(ctx context.Context, authID string) (*domain.Profile, error) {
	if p, ok := s.cache.Get(authID); ok {
		return p, nil
	}

	gen := s.cache.Generation()
	p, err := s.repo.GetProfileByAuthID(ctx, authID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetProfileFailed, err)
	}
	if !s.cache.SetIfCurrent(p, gen) {
		logger.FromContext(ctx).Debug(LogMsgStaleLoadDiscarded, "user_id", p.ID)
	}
	return p, nil
}

// EnsureProfile loads the profile, creating it with a zero balance on first sight
func (s *service) EnsureProfile(ctx context.Context, authID, username string) (*domain.Profile, error) {
	p, err := s.GetProfile(ctx, authID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	gen := s.cache.Generation()
	p, err = s.repo.CreateProfile(ctx, authID, username)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateProfileFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgProfileCreated, "user_id", p.ID)
	s.cache.SetIfCurrent(p, gen)
	return p, nil
}

func (s *service) Invalidate(authID string) {
	s.cache.Invalidate(authID)
}

// InvalidateAll drops every cached profile
func (s *service) InvalidateAll() {
	s.cache.Purge()
}

func (s *service) GetCacheStats() CacheStats {
	return s.cache.GetStats()
}

// RegisterInvalidation drops cached profiles whenever a wallet or redeem event is published
func RegisterInvalidation(bus event.Bus, svc Service) {
	handler := func(ctx context.Context, evt event.Event) error {
		if authID := evt.AuthID(); authID != "" {
			svc.Invalidate(authID)
			logger.FromContext(ctx).Debug(LogMsgProfileInvalidated, "type", evt.Type)
		}
		return nil
	}
	bus.Subscribe(event.WalletUpdated, handler)
	bus.Subscribe(event.RedeemUpdated, handler)
}
