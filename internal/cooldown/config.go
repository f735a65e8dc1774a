package cooldown

import (
	"time"

	"github.com/osse101/CoinQuest_Go/internal/domain"
)

// Config holds cooldown configuration
type Config struct {
	// DevMode bypasses all cooldowns when true
	DevMode bool

	// Cooldowns maps actions to their durations
	// If not specified, package defaults are used
	Cooldowns map[domain.Action]time.Duration
}

// GetCooldownDuration returns the cooldown duration for an action
func (c *Config) GetCooldownDuration(action domain.Action) time.Duration {
	if c.Cooldowns != nil {
		if duration, ok := c.Cooldowns[action]; ok {
			return duration
		}
	}

	switch action {
	case domain.ActionDailyReward:
		return DailyRewardCooldown
	case domain.ActionSpin:
		return SpinCooldown
	case domain.ActionAd:
		return AdSlotCooldown
	case domain.ActionVideo:
		return VideoCooldown
	default:
		return DefaultCooldownDuration
	}
}

// Evaluate applies the configured duration for action to IsEligible
func (c *Config) Evaluate(action domain.Action, lastUsedAt *time.Time, now time.Time) Eligibility {
	if c.DevMode {
		return Eligibility{Eligible: true}
	}
	return IsEligible(lastUsedAt, now, c.GetCooldownDuration(action))
}

// Check returns ErrOnCooldown when action is not eligible
func (c *Config) Check(action domain.Action, lastUsedAt *time.Time, now time.Time) error {
	e := c.Evaluate(action, lastUsedAt, now)
	if e.Eligible {
		return nil
	}
	return ErrOnCooldown{Action: string(action), Remaining: e.Remaining}
}
