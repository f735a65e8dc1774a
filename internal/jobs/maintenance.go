package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/CoinQuest_Go/internal/repository"
	"github.com/osse101/CoinQuest_Go/internal/reward"
)

// ProfileCache is the part of the profile service the jobs need
type ProfileCache interface {
	InvalidateAll()
}

// StreakExpiryJob zeroes daily streaks whose last claim is older than the reset window.
// Claims apply the same rule on their own, so this only keeps stored profiles tidy.
type StreakExpiryJob struct {
	repo   repository.Maintenance
	cache  ProfileCache
	window time.Duration
	now    func() time.Time
}

// NewStreakExpiryJob creates the streak expiry job. cache may be nil when the
// job runs outside the server process.
func NewStreakExpiryJob(repo repository.Maintenance, cache ProfileCache) *StreakExpiryJob {
	return &StreakExpiryJob{
		repo:   repo,
		cache:  cache,
		window: reward.StreakResetWindow,
		now:    time.Now,
	}
}

func (j *StreakExpiryJob) Name() string { return JobNameStreakExpiry }

func (j *StreakExpiryJob) Process(ctx context.Context) (int64, error) {
	n, err := j.repo.ResetExpiredStreaks(ctx, j.now().Add(-j.window))
	if err != nil {
		return 0, fmt.Errorf(ErrMsgResetStreaks, err)
	}
	if n > 0 && j.cache != nil {
		j.cache.InvalidateAll()
	}
	return n, nil
}

// SessionSweepJob cancels redeem sessions left active longer than ttl. No refund is made.
// Only redeem_sessions rows change, so cached profiles stay valid.
type SessionSweepJob struct {
	repo repository.Maintenance
	ttl  time.Duration
	now  func() time.Time
}

// NewSessionSweepJob creates the stale session sweep
func NewSessionSweepJob(repo repository.Maintenance, ttl time.Duration) *SessionSweepJob {
	return &SessionSweepJob{
		repo: repo,
		ttl:  ttl,
		now:  time.Now,
	}
}

func (j *SessionSweepJob) Name() string { return JobNameSessionSweep }

func (j *SessionSweepJob) Process(ctx context.Context) (int64, error) {
	now := j.now()
	n, err := j.repo.CancelStaleRedeemSessions(ctx, now.Add(-j.ttl), now)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgSweepSessions, err)
	}
	return n, nil
}
