package ledger

// History limits
const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 100
)

// Error message constants
const (
	ErrMsgUpdateBalanceFailed     = "failed to update balance: %w"
	ErrMsgInsertTransactionFailed = "failed to insert transaction: %w"
	ErrMsgIdempotencyLookupFailed = "failed to look up idempotency key: %w"
	ErrMsgGetProfileFailed        = "failed to get profile: %w"
	ErrMsgListTransactionsFailed  = "failed to list transactions: %w"
	ErrMsgGetTotalsFailed         = "failed to get ledger totals: %w"
)

// Log message constants
const (
	LogMsgLedgerInconsistent = "Ledger totals do not match balance"
)
