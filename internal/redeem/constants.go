package redeem

import "time"

// Defaults
const (
	DefaultStepDuration = 10 * time.Second
	DefaultSessionTTL   = 24 * time.Hour
)

// Transaction descriptions
const (
	DescFmtRedeemed = "Redeemed: %s"
	DescFmtRefund   = "Refund: %s"
	RefundKeyPrefix = "refund:"
)

// Error message constants
const (
	ErrMsgBeginTxFailed     = "failed to begin transaction: %w"
	ErrMsgLockProfileFailed = "failed to lock profile: %w"
	ErrMsgGetCodeFailed     = "failed to get redeem code: %w"
	ErrMsgGetSessionFailed  = "failed to get redeem session: %w"
	ErrMsgCreateSessionFail = "failed to create redeem session: %w"
	ErrMsgFinishSessionFail = "failed to finish redeem session: %w"
	ErrMsgListCodesFailed   = "failed to list redeem codes: %w"
	ErrMsgGetProfileFailed  = "failed to get profile: %w"
	ErrMsgCommitFailed      = "failed to commit redeem transition: %w"
	ErrMsgRefundFailed      = "failed to refund redeem session: %w"
)

// Log message constants
const (
	LogMsgSessionStarted   = "Redeem session started"
	LogMsgSessionRevealed  = "Redeem code revealed"
	LogMsgSessionCancelled = "Redeem session cancelled"
	LogMsgStartReplayed    = "Redeem start replayed from idempotency key"
	LogMsgPublishFailed    = "Failed to publish redeem event"
)
