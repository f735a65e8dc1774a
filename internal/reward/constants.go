package reward

import "time"

// Fixed reward amounts
const (
	AdReward    = 25
	VideoReward = 50

	DailyBaseReward   = 50
	DailyStreakBonus  = 10
	DailyRewardCap    = 200
	StreakResetWindow = 48 * time.Hour
)

// spinTable is the drawable set of spin outcomes. Every entry is equally likely.
var spinTable = [...]int{10, 25, 50, 75, 100, 150, 200, 250}

// JackpotLabel is the display-only wheel segment
const JackpotLabel = "JACKPOT"

// Transaction descriptions
const (
	DescFmtAd    = "Watched ad (%s): %s"
	DescFmtVideo = "Watched video: %s"
	DescFmtDaily = "Daily reward (day %d): %s"
	DescFmtSpin  = "Spin Wheel Reward: %s"
)

// Error message constants
const (
	ErrMsgBeginTxFailed            = "failed to begin transaction: %w"
	ErrMsgLockProfileFailed        = "failed to lock profile: %w"
	ErrMsgGetAdCooldownFail        = "failed to read ad cooldown: %w"
	ErrMsgRecordClaimFailed        = "failed to record claim timestamp: %w"
	ErrMsgApplyLedgerFailed        = "failed to apply reward: %w"
	ErrMsgCommitFailed             = "failed to commit claim: %w"
	ErrMsgSlotNotApplicable        = "slot is only valid for ad claims"
	ErrMsgGetVideoViewFailed       = "failed to read video view: %w"
	ErrMsgStartVideoFailed         = "failed to start video view: %w"
	ErrMsgViewSessionRequired      = "video claims require a view_session_id"
	ErrMsgViewSessionNotApplicable = "view_session_id is only valid for video claims"
)

// Log message constants
const (
	LogMsgClaimAccepted   = "Reward claimed"
	LogMsgVideoStarted    = "Video view started"
	LogMsgClaimReplayed   = "Reward claim replayed from idempotency key"
	LogMsgClaimOnCooldown = "Reward claim rejected: on cooldown"
	LogMsgPublishFailed   = "Failed to publish wallet event"
	LogMsgRNGFallback     = "Secure RNG failed, falling back to math/rand"
)
