package repository

import (
	"context"
	"time"
)

// Maintenance defines bulk operations run by scheduled jobs
type Maintenance interface {
	// ResetExpiredStreaks zeroes streaks whose last claim is older than before
	ResetExpiredStreaks(ctx context.Context, before time.Time) (int64, error)
	// CancelStaleRedeemSessions cancels active sessions started before the cutoff
	CancelStaleRedeemSessions(ctx context.Context, startedBefore, now time.Time) (int64, error)
}
