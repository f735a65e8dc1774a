package handler

import "time"

// Client-facing error messages. These never carry internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgInvalidSessionID      = "Invalid session id"
	ErrMsgUnauthorized          = "Unauthorized"
	ErrMsgUnknownJob            = "Unknown job"
)

// User-facing messages for service errors
const (
	ErrMsgGenericServerError     = "Something went wrong"
	ErrMsgUnavailableError       = "Service is temporarily unavailable. Please try again."
	ErrMsgUserNotFoundError      = "Profile not found"
	ErrMsgInsufficientBalanceErr = "Not enough coins"
	ErrMsgOnCooldownError        = "Action is on cooldown. Try again later"
	ErrMsgInvalidActionError     = "Unknown reward action"
	ErrMsgInvalidAdSlotError     = "Unknown ad slot"
	ErrMsgVideoViewNotFoundErr   = "Video view not found. Start the video again"
	ErrMsgVideoViewClaimedErr    = "This video view was already rewarded"
	ErrMsgInvalidInputError      = "Invalid request. Please check your inputs."
	ErrMsgShopItemNotFoundError  = "Shop item not found"
	ErrMsgRedeemCodeNotFoundErr  = "Redeem code not found"
	ErrMsgSessionNotFoundError   = "Redeem session not found"
	ErrMsgSessionActiveError     = "Finish or cancel your current redemption first"
	ErrMsgRedeemNotReadyError    = "Verification is not complete yet"
	ErrMsgSessionClosedError     = "This redemption is closed"
	ErrMsgIdempotencyConflictErr = "Idempotency key was already used for another request"
)

// Log messages
const (
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgRequestDecoded    = "Request decoded"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgServiceError      = "Service call failed"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgManualJobRun      = "Manual job run triggered"
	LogMsgProfileEnsureFail = "Failed to ensure profile"
)

// Health
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgDatabaseFailed = "database connection failed"
	ReadinessTimeout        = 2 * time.Second
)

// Query parameters and limits
const (
	QueryParamLimit  = "limit"
	URLParamID       = "id"
	URLParamAuthID   = "authID"
	URLParamJob      = "job"
	HeaderRetryAfter = "Retry-After"
)
