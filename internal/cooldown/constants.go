package cooldown

import "time"

// =============================================================================
// Duration Constants
// =============================================================================

const (
	// DailyRewardCooldown is the window between daily reward claims
	DailyRewardCooldown = 24 * time.Hour

	// SpinCooldown is the window between wheel spins
	SpinCooldown = 24 * time.Hour

	// AdSlotCooldown applies independently to each ad slot
	AdSlotCooldown = 5 * time.Minute

	// VideoCooldown is the minimum watch time, measured from the start of the view session
	VideoCooldown = 30 * time.Second

	// DefaultCooldownDuration is the fallback cooldown when no specific duration is configured
	DefaultCooldownDuration = 5 * time.Minute
)

// =============================================================================
// Error Message Constants
// =============================================================================

const (
	// ErrMsgGetProfileFailed is returned when the profile read for a status lookup fails
	ErrMsgGetProfileFailed = "failed to get profile: %w"

	// ErrMsgGetAdCooldownsFailed is returned when ad slot timestamps cannot be read
	ErrMsgGetAdCooldownsFailed = "failed to get ad cooldowns: %w"
)

// =============================================================================
// Error Message Format Strings (for ErrOnCooldown.Error())
// =============================================================================

const (
	// ErrFmtCooldownWithHours formats cooldown error with hours and minutes
	ErrFmtCooldownWithHours = "You can claim %s again in %dh %dm"

	// ErrFmtCooldownWithMinutes formats cooldown error with minutes and seconds
	ErrFmtCooldownWithMinutes = "You can claim %s again in %dm %ds"

	// ErrFmtCooldownSecondsOnly formats cooldown error with seconds only
	ErrFmtCooldownSecondsOnly = "You can claim %s again in %ds"
)

// =============================================================================
// Time Conversion Constants
// =============================================================================

const (
	SecondsPerMinute = 60
	MinutesPerHour   = 60
)
