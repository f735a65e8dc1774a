package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound = "user not found"

	// Ledger errors
	ErrMsgInsufficientBalance = "insufficient balance"
	ErrMsgZeroDelta           = "transaction amount must be non-zero"
	ErrMsgIdempotencyConflict = "idempotency key already used for a different action"

	// Cooldown errors
	ErrMsgOnCooldown = "action on cooldown"

	// Reward errors
	ErrMsgInvalidAction = "invalid reward action"
	ErrMsgInvalidAdSlot = "invalid ad slot"

	// Video errors
	ErrMsgVideoViewNotFound = "video view session not found"
	ErrMsgVideoViewClaimed  = "video view session already claimed"

	// Shop errors
	ErrMsgShopItemNotFound = "shop item not found"

	// Redeem errors
	ErrMsgRedeemCodeNotFound    = "redeem code not found"
	ErrMsgRedeemSessionNotFound = "redeem session not found"
	ErrMsgRedeemSessionActive   = "a redeem session is already active"
	ErrMsgRedeemNotReady        = "redeem verification is not complete"
	ErrMsgRedeemSessionClosed   = "redeem session is closed"

	// Database/System errors
	ErrMsgBackendUnavailable = "backend unavailable"
	ErrMsgTxClosed           = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	ErrInsufficientBalance = errors.New(ErrMsgInsufficientBalance)
	ErrZeroDelta           = errors.New(ErrMsgZeroDelta)
	ErrIdempotencyConflict = errors.New(ErrMsgIdempotencyConflict)

	ErrOnCooldown = errors.New(ErrMsgOnCooldown)

	ErrInvalidAction = errors.New(ErrMsgInvalidAction)
	ErrInvalidAdSlot = errors.New(ErrMsgInvalidAdSlot)

	ErrVideoViewNotFound = errors.New(ErrMsgVideoViewNotFound)
	ErrVideoViewClaimed  = errors.New(ErrMsgVideoViewClaimed)

	ErrShopItemNotFound = errors.New(ErrMsgShopItemNotFound)

	ErrRedeemCodeNotFound    = errors.New(ErrMsgRedeemCodeNotFound)
	ErrRedeemSessionNotFound = errors.New(ErrMsgRedeemSessionNotFound)
	ErrRedeemSessionActive   = errors.New(ErrMsgRedeemSessionActive)
	ErrRedeemNotReady        = errors.New(ErrMsgRedeemNotReady)
	ErrRedeemSessionClosed   = errors.New(ErrMsgRedeemSessionClosed)

	// ErrBackendUnavailable marks transient storage failures. Callers may retry the whole action.
	ErrBackendUnavailable = errors.New(ErrMsgBackendUnavailable)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
