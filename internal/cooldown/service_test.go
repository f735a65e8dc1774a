package cooldown

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CoinQuest_Go/internal/domain"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetProfileByAuthID(ctx context.Context, authID string) (*domain.Profile, error) {
	args := m.Called(ctx, authID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockRepository) GetAdCooldowns(ctx context.Context, userID string) (map[string]time.Time, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]time.Time), args.Error(1)
}

func TestService_GetStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	repo := new(MockRepository)
	svc := &service{repo: repo, now: func() time.Time { return now }}

	repo.On("GetProfileByAuthID", ctx, "auth-1").Return(&domain.Profile{
		ID:              "user-1",
		LastDailyReward: ptr(now.Add(-2 * time.Hour)),
	}, nil)
	repo.On("GetAdCooldowns", ctx, "user-1").Return(map[string]time.Time{
		"ad2": now.Add(-4 * time.Minute),
		"ad3": now.Add(-6 * time.Minute),
	}, nil)

	status, err := svc.GetStatus(ctx, "auth-1")
	require.NoError(t, err)

	assert.False(t, status.DailyReward.Eligible)
	assert.Equal(t, 22*time.Hour, status.DailyReward.Remaining)
	assert.True(t, status.Spin.Eligible)
	require.Len(t, status.Ads, domain.AdSlotCount)
	assert.True(t, status.Ads["ad1"].Eligible)
	assert.False(t, status.Ads["ad2"].Eligible)
	assert.Equal(t, time.Minute, status.Ads["ad2"].Remaining)
	assert.True(t, status.Ads["ad3"].Eligible)
	repo.AssertExpectations(t)
}

func TestService_GetStatus_UserNotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo, Config{})

	repo.On("GetProfileByAuthID", ctx, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.GetStatus(ctx, "missing")
	assert.True(t, errors.Is(err, domain.ErrUserNotFound))
	repo.AssertNotCalled(t, "GetAdCooldowns", mock.Anything, mock.Anything)
}
