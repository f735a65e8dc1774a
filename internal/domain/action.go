package domain

import "fmt"

// Action identifies a reward-granting action
type Action string

const (
	ActionAd          Action = "ad"
	ActionVideo       Action = "video"
	ActionDailyReward Action = "daily_reward"
	ActionSpin        Action = "spin"
)

// AdSlotCount is the number of independent ad slots a user can watch
const AdSlotCount = 5

// AdSlots lists the ad slot identifiers in display order
var AdSlots = []string{"ad1", "ad2", "ad3", "ad4", "ad5"}

// Valid reports whether the action can be claimed
func (a Action) Valid() bool {
	switch a {
	case ActionAd, ActionVideo, ActionDailyReward, ActionSpin:
		return true
	}
	return false
}

// Source maps the action to the transaction source it credits under
func (a Action) Source() Source {
	return Source(a)
}

// ValidateAdSlot returns ErrInvalidAdSlot for unknown slot identifiers
func ValidateAdSlot(slot string) error {
	for _, s := range AdSlots {
		if s == slot {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidAdSlot, slot)
}
