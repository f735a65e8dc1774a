package cooldown

import (
	"fmt"
	"time"

	"github.com/osse101/CoinQuest_Go/internal/domain"
)

// ErrOnCooldown is returned when an action is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	hours := int(e.Remaining.Hours())
	minutes := int(e.Remaining.Minutes()) % MinutesPerHour
	seconds := int(e.Remaining.Seconds()) % SecondsPerMinute

	if hours > 0 {
		return fmt.Sprintf(ErrFmtCooldownWithHours, e.Action, hours, minutes)
	}
	if minutes > 0 {
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, e.Action, minutes, seconds)
	}
	return fmt.Sprintf(ErrFmtCooldownSecondsOnly, e.Action, seconds)
}

// Is allows errors.Is() to match both ErrOnCooldown values and domain.ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	if target == domain.ErrOnCooldown {
		return true
	}
	_, ok := target.(ErrOnCooldown)
	return ok
}
