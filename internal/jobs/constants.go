package jobs

import "time"

// Job names, used as metric labels and in logs
const (
	JobNameStreakExpiry = "streak_expiry"
	JobNameSessionSweep = "redeem_session_sweep"
)

// DefaultRunTimeout bounds a single job run
const DefaultRunTimeout = time.Minute

// Error message constants
const (
	ErrMsgInvalidSchedule = "invalid schedule %q for job %s: %w"
	ErrMsgResetStreaks    = "failed to reset expired streaks: %w"
	ErrMsgSweepSessions   = "failed to cancel stale redeem sessions: %w"
)

// Log message constants
const (
	LogMsgJobScheduled     = "Job scheduled"
	LogMsgSchedulerStarted = "Job scheduler started"
	LogMsgSchedulerStopped = "Job scheduler stopped"
	LogMsgJobFailed        = "Scheduled job failed"
	LogMsgJobCompleted     = "Scheduled job completed"
	LogMsgCronError        = "Cron error"
)
