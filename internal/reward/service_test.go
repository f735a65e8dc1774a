package reward

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CoinQuest_Go/internal/cooldown"
	"github.com/osse101/CoinQuest_Go/internal/domain"
	"github.com/osse101/CoinQuest_Go/internal/event"
	"github.com/osse101/CoinQuest_Go/internal/ledger"
	"github.com/osse101/CoinQuest_Go/mocks"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func ago(d time.Duration) *time.Time {
	t := fixedNow.Add(-d)
	return &t
}

func newTestService(t *testing.T) (*service, *mocks.MockRepository, *mocks.MockTx, *event.MemoryBus) {
	repo := mocks.NewMockRepository(t)
	tx := mocks.NewMockTx(t)
	bus := event.NewMemoryBus()

	svc := NewService(repo, cooldown.Config{}, bus).(*service)
	svc.now = func() time.Time { return fixedNow }
	svc.resolver = &Resolver{rng: func(n int) int { return 3 }} // 75

	repo.On("BeginTx", mock.Anything).Return(tx, nil).Maybe()
	tx.On("Rollback", mock.Anything).Return(nil).Maybe()
	return svc, repo, tx, bus
}

func TestClaim_Spin(t *testing.T) {
	ctx := context.Background()
	svc, _, tx, bus := newTestService(t)

	var published []event.Event
	bus.Subscribe(event.WalletUpdated, func(ctx context.Context, e event.Event) error {
		published = append(published, e)
		return nil
	})

	profile := &domain.Profile{ID: "user-1", AuthID: "auth-1", Coins: 100, LastSpin: ago(25 * time.Hour)}
	tx.On("GetProfileForUpdate", ctx, "auth-1").Return(profile, nil)
	tx.On("GetTransactionByIdempotencyKey", ctx, "user-1", "spin-1").Return(nil, nil)
	tx.On("UpdateBalance", ctx, "user-1", 175).Return(nil)
	tx.On("InsertTransaction", ctx, mock.MatchedBy(func(txn *domain.Transaction) bool {
		return txn.Amount == 75 && txn.Type == domain.DirectionCredit && txn.Source == domain.SourceSpin
	})).Return(nil)
	tx.On("UpdateLastSpin", ctx, "user-1", fixedNow).Return(nil)
	tx.On("Commit", ctx).Return(nil)

	res, err := svc.Claim(ctx, ClaimRequest{AuthID: "auth-1", Action: domain.ActionSpin, IdempotencyKey: "spin-1"})
	require.NoError(t, err)

	assert.Equal(t, 75, res.Amount)
	assert.Equal(t, 175, res.Balance)
	assert.False(t, res.Replayed)
	require.NotNil(t, res.NextAvailableAt)
	assert.Equal(t, fixedNow.Add(24*time.Hour), *res.NextAvailableAt)
	require.Len(t, published, 1)
	assert.Equal(t, "auth-1", published[0].AuthID())
}

func TestClaim_SpinOnCooldown(t *testing.T) {
	ctx := context.Background()
	svc, _, tx, _ := newTestService(t)

	tx.On("GetProfileForUpdate", ctx, "auth-1").Return(&domain.Profile{ID: "user-1", Coins: 100, LastSpin: ago(2 * time.Hour)}, nil)
	tx.On("GetTransactionByIdempotencyKey", ctx, "user-1", "spin-2").Return(nil, nil)

	_, err := svc.Claim(ctx, ClaimRequest{AuthID: "auth-1", Action: domain.ActionSpin, IdempotencyKey: "spin-2"})

	var cdErr cooldown.ErrOnCooldown
	require.ErrorAs(t, err, &cdErr)
	assert.Equal(t, 22*time.Hour, cdErr.Remaining)
	assert.ErrorIs(t, err, domain.ErrOnCooldown)
	tx.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestClaim_AdSlots(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		lastUsed *time.Time
		wantErr  bool
	}{
		{"slot used 4 minutes ago", ago(4 * time.Minute), true},
		{"slot used 6 minutes ago", ago(6 * time.Minute), false},
		{"slot never used", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, tx, _ := newTestService(t)

			tx.On("GetProfileForUpdate", ctx, "auth-1").Return(&domain.Profile{ID: "user-1", Coins: 0}, nil)
			tx.On("GetTransactionByIdempotencyKey", ctx, "user-1", "ad-key").Return(nil, nil)
			tx.On("GetAdCooldown", ctx, "user-1", "ad3").Return(tt.lastUsed, nil)

			if !tt.wantErr {
				tx.On("UpdateBalance", ctx, "user-1", 25).Return(nil)
				tx.On("InsertTransaction", ctx, mock.Anything).Return(nil)
				tx.On("UpsertAdCooldown", ctx, "user-1", "ad3", fixedNow).Return(nil)
				tx.On("Commit", ctx).Return(nil)
			}

			res, err := svc.Claim(ctx, ClaimRequest{AuthID: "auth-1", Action: domain.ActionAd, Slot: "ad3", IdempotencyKey: "ad-key"})
			if tt.wantErr {
				var cdErr cooldown.ErrOnCooldown
				require.ErrorAs(t, err, &cdErr)
				assert.Equal(t, time.Minute, cdErr.Remaining)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, AdReward, res.Amount)
			assert.Equal(t, 25, res.Balance)
		})
	}
}

func TestClaim_DailyReward(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		streak     int
		lastClaim  *time.Time
		wantAmount int
		wantStreak int
	}{
		{"first claim", 0, nil, 50, 1},
		{"continuing streak", 5, ago(30 * time.Hour), 100, 6},
		{"capped", 20, ago(25 * time.Hour), 200, 21},
		{"broken streak", 9, ago(72 * time.Hour), 50, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, tx, _ := newTestService(t)

			tx.On("GetProfileForUpdate", ctx, "auth-1").Return(&domain.Profile{
				ID: "user-1", Coins: 10, DailyStreak: tt.streak, LastDailyReward: tt.lastClaim,
			}, nil)
			tx.On("GetTransactionByIdempotencyKey", ctx, "user-1", "daily").Return(nil, nil)
			tx.On("UpdateBalance", ctx, "user-1", 10+tt.wantAmount).Return(nil)
			tx.On("InsertTransaction", ctx, mock.MatchedBy(func(txn *domain.Transaction) bool {
				return txn.Source == domain.SourceDailyReward && txn.Amount == tt.wantAmount
			})).Return(nil)
			tx.On("UpdateDailyClaim", ctx, "user-1", tt.wantStreak, fixedNow).Return(nil)
			tx.On("Commit", ctx).Return(nil)

			res, err := svc.Claim(ctx, ClaimRequest{AuthID: "auth-1", Action: domain.ActionDailyReward, IdempotencyKey: "daily"})
			require.NoError(t, err)
			assert.Equal(t, tt.wantAmount, res.Amount)
			assert.Equal(t, tt.wantStreak, res.Streak)
		})
	}
}

// openView is a view session started long enough ago to be claimable
func openView(id string) *domain.VideoView {
	return &domain.VideoView{ID: id, UserID: "user-1", StartedAt: fixedNow.Add(-time.Minute)}
}

func TestStartVideo(t *testing.T) {
	ctx := context.Background()
	svc, _, tx, _ := newTestService(t)

	var started *domain.VideoView
	tx.On("GetProfileForUpdate", ctx, "auth-1").Return(&domain.Profile{ID: "user-1"}, nil)
	tx.On("StartVideoView", ctx, mock.Anything).Run(func(args mock.Arguments) {
		started = args.Get(1).(*domain.VideoView)
	}).Return(nil)
	tx.On("Commit", ctx).Return(nil)

	session, err := svc.StartVideo(ctx, "auth-1")
	require.NoError(t, err)
	require.NotNil(t, started)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, started.ID, session.ID)
	assert.Equal(t, "user-1", started.UserID)
	assert.Equal(t, fixedNow, session.StartedAt)
	assert.Equal(t, fixedNow.Add(cooldown.VideoCooldown), session.ClaimableAt)
}

func TestClaim_Video(t *testing.T) {
	ctx := context.Background()
	svc, _, tx, _ := newTestService(t)

	tx.On("GetProfileForUpdate", ctx, "auth-1").Return(&domain.Profile{ID: "user-1"}, nil)
	tx.On("GetTransactionByIdempotencyKey", ctx, "user-1", "view-9").Return(nil, nil)
	tx.On("GetVideoView", ctx, "user-1").Return(openView("v-1"), nil)
	tx.On("UpdateBalance", ctx, "user-1", 50).Return(nil)
	tx.On("InsertTransaction", ctx, mock.Anything).Return(nil)
	tx.On("MarkVideoViewClaimed", ctx, "user-1", fixedNow).Return(nil)
	tx.On("Commit", ctx).Return(nil)

	res, err := svc.Claim(ctx, ClaimRequest{AuthID: "auth-1", Action: domain.ActionVideo, ViewSessionID: "v-1", IdempotencyKey: "view-9"})
	require.NoError(t, err)
	assert.Equal(t, VideoReward, res.Amount)
	assert.Nil(t, res.NextAvailableAt)
}

func TestClaim_VideoRejected(t *testing.T) {
	claimed := openView("v-1")
	claimed.ClaimedAt = ago(10 * time.Second)

	tests := []struct {
		name    string
		view    *domain.VideoView
		present string
		wantErr error
	}{
		{"never started", nil, "v-1", domain.ErrVideoViewNotFound},
		{"replaced by a newer view", openView("v-2"), "v-1", domain.ErrVideoViewNotFound},
		{"already claimed", claimed, "v-1", domain.ErrVideoViewClaimed},
		{"watched too briefly", &domain.VideoView{ID: "v-1", UserID: "user-1", StartedAt: fixedNow.Add(-10 * time.Second)}, "v-1", domain.ErrOnCooldown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, _, tx, _ := newTestService(t)

			tx.On("GetProfileForUpdate", ctx, "auth-1").Return(&domain.Profile{ID: "user-1", Coins: 10}, nil)
			tx.On("GetTransactionByIdempotencyKey", ctx, "user-1", "fresh-key").Return(nil, nil)
			tx.On("GetVideoView", ctx, "user-1").Return(tt.view, nil)

			_, err := svc.Claim(ctx, ClaimRequest{AuthID: "auth-1", Action: domain.ActionVideo, ViewSessionID: tt.present, IdempotencyKey: "fresh-key"})
			assert.ErrorIs(t, err, tt.wantErr)
			tx.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything)
			tx.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestClaim_ReplayReturnsOriginalResult(t *testing.T) {
	ctx := context.Background()
	svc, _, tx, _ := newTestService(t)

	tx.On("GetProfileForUpdate", ctx, "auth-1").Return(&domain.Profile{ID: "user-1", Coins: 175, LastSpin: ago(time.Minute)}, nil)
	tx.On("GetTransactionByIdempotencyKey", ctx, "user-1", "spin-1").
		Return(&domain.Transaction{ID: "txn-1", Source: domain.SourceSpin, Amount: 75, Type: domain.DirectionCredit}, nil)

	res, err := svc.Claim(ctx, ClaimRequest{AuthID: "auth-1", Action: domain.ActionSpin, IdempotencyKey: "spin-1"})
	require.NoError(t, err)
	assert.True(t, res.Replayed)
	assert.Equal(t, 75, res.Amount)
	assert.Equal(t, 175, res.Balance)
	assert.Equal(t, "txn-1", res.TransactionID)
	tx.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestClaim_Validation(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newTestService(t)

	_, err := svc.Claim(ctx, ClaimRequest{AuthID: "a", Action: "jackpot"})
	assert.ErrorIs(t, err, domain.ErrInvalidAction)

	_, err = svc.Claim(ctx, ClaimRequest{AuthID: "a", Action: domain.ActionAd, Slot: "ad9"})
	assert.ErrorIs(t, err, domain.ErrInvalidAdSlot)

	_, err = svc.Claim(ctx, ClaimRequest{AuthID: "a", Action: domain.ActionSpin, Slot: "ad1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Claim(ctx, ClaimRequest{AuthID: "a", Action: domain.ActionVideo, IdempotencyKey: "k"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Claim(ctx, ClaimRequest{AuthID: "a", Action: domain.ActionSpin, ViewSessionID: "v-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	repo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestClaim_CommitFailureSurfaces(t *testing.T) {
	ctx := context.Background()
	svc, _, tx, _ := newTestService(t)

	tx.On("GetProfileForUpdate", ctx, "auth-1").Return(&domain.Profile{ID: "user-1"}, nil)
	tx.On("GetTransactionByIdempotencyKey", ctx, "user-1", "v").Return(nil, nil)
	tx.On("GetVideoView", ctx, "user-1").Return(openView("v-1"), nil)
	tx.On("UpdateBalance", ctx, "user-1", 50).Return(nil)
	tx.On("InsertTransaction", ctx, mock.Anything).Return(nil)
	tx.On("MarkVideoViewClaimed", ctx, "user-1", fixedNow).Return(nil)
	tx.On("Commit", ctx).Return(errors.New("connection reset"))

	_, err := svc.Claim(ctx, ClaimRequest{AuthID: "auth-1", Action: domain.ActionVideo, ViewSessionID: "v-1", IdempotencyKey: "v"})
	assert.Error(t, err)
}

func TestClaim_LedgerBalanceInvariant(t *testing.T) {
	ctx := context.Background()
	svc, _, tx, _ := newTestService(t)

	profile := &domain.Profile{ID: "user-1", Coins: 0}
	var recorded []domain.Transaction

	tx.On("GetProfileForUpdate", ctx, "auth-1").Return(profile, nil)
	tx.On("GetTransactionByIdempotencyKey", ctx, "user-1", mock.Anything).Return(nil, nil)
	tx.On("GetAdCooldown", ctx, "user-1", mock.Anything).Return(nil, nil)
	tx.On("UpdateBalance", ctx, "user-1", mock.Anything).Return(nil)
	tx.On("InsertTransaction", ctx, mock.Anything).Run(func(args mock.Arguments) {
		recorded = append(recorded, *args.Get(1).(*domain.Transaction))
	}).Return(nil)
	tx.On("UpsertAdCooldown", ctx, "user-1", mock.Anything, fixedNow).Return(nil)
	tx.On("GetVideoView", ctx, "user-1").Return(openView("v-1"), nil)
	tx.On("MarkVideoViewClaimed", ctx, "user-1", fixedNow).Return(nil)
	tx.On("Commit", ctx).Return(nil)

	for i, slot := range domain.AdSlots {
		_, err := svc.Claim(ctx, ClaimRequest{AuthID: "auth-1", Action: domain.ActionAd, Slot: slot, IdempotencyKey: slot})
		require.NoError(t, err, "claim %d", i)
	}
	_, err := svc.Claim(ctx, ClaimRequest{AuthID: "auth-1", Action: domain.ActionVideo, ViewSessionID: "v-1", IdempotencyKey: "v1"})
	require.NoError(t, err)

	replayed, err := ledger.Replay(0, recorded)
	require.NoError(t, err)
	assert.Equal(t, profile.Coins, replayed)
	assert.Equal(t, 5*AdReward+VideoReward, profile.Coins)
}

func TestEffectiveStreak(t *testing.T) {
	assert.Equal(t, 0, EffectiveStreak(&domain.Profile{DailyStreak: 4}, fixedNow))
	assert.Equal(t, 4, EffectiveStreak(&domain.Profile{DailyStreak: 4, LastDailyReward: ago(47 * time.Hour)}, fixedNow))
	assert.Equal(t, 0, EffectiveStreak(&domain.Profile{DailyStreak: 4, LastDailyReward: ago(49 * time.Hour)}, fixedNow))
}
