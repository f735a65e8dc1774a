package redeem

import (
	"time"

	"github.com/osse101/CoinQuest_Go/internal/domain"
)

// State is the position of a user in the redeem flow
type State string

const (
	StateIdle  State = "idle"
	StateStep1 State = "step1"
	StateStep2 State = "step2"
	StateStep3 State = "step3"
	StateReady State = "ready"
)

// StepCount is the number of timed verification steps
const StepCount = 3

var stepStates = [StepCount]State{StateStep1, StateStep2, StateStep3}

// Progress is the derived view of a session at a point in time
type Progress struct {
	State      State
	Step       int // 1-based, 0 when idle or ready
	Remaining  time.Duration
	CanConfirm bool
}

// Phase derives the countdown position from the session start. Each step lasts step;
// once Step3's countdown has run out the flow waits in Step3 for confirmation.
// A start time in the future is treated as just started.
func Phase(startedAt, now time.Time, step time.Duration) Progress {
	elapsed := now.Sub(startedAt)
	if elapsed < 0 {
		elapsed = 0
	}

	total := step * StepCount
	if step <= 0 || elapsed >= total {
		return Progress{State: StateStep3, Step: StepCount, CanConfirm: true}
	}

	idx := int(elapsed / step)
	remaining := step*time.Duration(idx+1) - elapsed
	return Progress{State: stepStates[idx], Step: idx + 1, Remaining: remaining}
}

// Evaluate maps a persisted session onto the flow. nil and cancelled sessions are Idle.
func Evaluate(session *domain.RedeemSession, now time.Time, step time.Duration) Progress {
	if session == nil {
		return Progress{State: StateIdle}
	}
	switch session.State {
	case domain.RedeemSessionActive:
		return Phase(session.StartedAt, now, step)
	case domain.RedeemSessionRevealed:
		return Progress{State: StateReady}
	default:
		return Progress{State: StateIdle}
	}
}
