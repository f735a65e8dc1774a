package shop

// Error message constants
const (
	ErrMsgReadCatalogFailed  = "failed to read shop catalog %s: %w"
	ErrMsgParseCatalogFailed = "failed to parse shop catalog: %w"
	ErrMsgEmptyCatalog       = "shop catalog has no items"
	ErrMsgItemMissingFields  = "shop item requires id and name"
	ErrMsgBeginTxFailed      = "failed to begin transaction: %w"
	ErrMsgLockProfileFailed  = "failed to lock profile: %w"
	ErrMsgCommitFailed       = "failed to commit purchase: %w"
)

// Transaction descriptions
const (
	DescFmtPurchased = "Purchased: %s"
)

// Log message constants
const (
	LogMsgPurchaseCompleted = "Shop purchase completed"
	LogMsgPurchaseReplayed  = "Shop purchase replayed from idempotency key"
	LogMsgPublishFailed     = "Failed to publish wallet event"
)
