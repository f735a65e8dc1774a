package reward

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"

	"github.com/osse101/CoinQuest_Go/internal/domain"
	"github.com/osse101/CoinQuest_Go/internal/utils"
)

// Context carries profile state the resolver depends on
type Context struct {
	Streak int
}

// Resolver decides how many coins an eligible action is worth
type Resolver struct {
	rng func(n int) int // returns [0, n); injectable for testing
}

// NewResolver creates a resolver backed by crypto/rand
func NewResolver() *Resolver {
	return &Resolver{rng: secureIntn}
}

func secureIntn(n int) int {
	v, err := utils.SecureRandomInt(0, n-1)
	if err != nil {
		slog.Warn(LogMsgRNGFallback, "error", err)
		return rand.IntN(n) //nolint:gosec // fallback only
	}
	return v
}

// Resolve returns the coin amount for action. Unknown actions resolve to zero.
func (r *Resolver) Resolve(action domain.Action, ctx Context) int {
	switch action {
	case domain.ActionAd:
		return AdReward
	case domain.ActionVideo:
		return VideoReward
	case domain.ActionDailyReward:
		return DailyAmount(ctx.Streak)
	case domain.ActionSpin:
		return spinTable[r.rng(len(spinTable))]
	}
	return 0
}

// ResolveChecked is Resolve with action validation
func (r *Resolver) ResolveChecked(action domain.Action, ctx Context) (int, error) {
	if !action.Valid() {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidAction, action)
	}
	return r.Resolve(action, ctx), nil
}

// DailyAmount is min(50 + streak*10, 200). Negative streaks count as zero.
func DailyAmount(streak int) int {
	if streak < 0 {
		streak = 0
	}
	return min(DailyBaseReward+streak*DailyStreakBonus, DailyRewardCap)
}

// SpinValues returns a copy of the drawable spin outcomes
func SpinValues() []int {
	out := make([]int, len(spinTable))
	copy(out, spinTable[:])
	return out
}

// WheelSegment is one slice of the rendered spin wheel
type WheelSegment struct {
	Label    string `json:"label"`
	Value    int    `json:"value"`
	Drawable bool   `json:"drawable"`
}

// WheelSegments returns the segments a client should render. The jackpot segment is
// shown on the wheel but is not a spin value, so it can never be drawn.
func WheelSegments() []WheelSegment {
	segments := make([]WheelSegment, 0, len(spinTable)+1)
	for _, v := range spinTable {
		segments = append(segments, WheelSegment{Label: strconv.Itoa(v), Value: v, Drawable: true})
	}
	return append(segments, WheelSegment{Label: JackpotLabel, Drawable: false})
}
