package profile

import "time"

// Cache defaults
const (
	DefaultCacheSize = 1000
	DefaultCacheTTL  = 5 * time.Minute
)

// Error message constants
const (
	ErrMsgGetProfileFailed    = "failed to get profile: %w"
	ErrMsgCreateProfileFailed = "failed to create profile: %w"
)

// Log message constants
const (
	LogMsgProfileCreated     = "Profile created"
	LogMsgProfileInvalidated = "Profile cache invalidated"
	LogMsgStaleLoadDiscarded = "Discarded profile loaded across an invalidation"
)
