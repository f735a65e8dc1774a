package cooldown

import "time"

// Eligibility is the outcome of a cooldown evaluation
type Eligibility struct {
	Eligible  bool
	Remaining time.Duration
}

// IsEligible decides whether an action last performed at lastUsedAt may run again at now.
// A nil lastUsedAt is always eligible. When now is before lastUsedAt (clock skew) the action
// is not eligible and the full duration is reported as remaining. Remaining is never negative.
func IsEligible(lastUsedAt *time.Time, now time.Time, d time.Duration) Eligibility {
	if lastUsedAt == nil || d <= 0 {
		return Eligibility{Eligible: true}
	}

	elapsed := now.Sub(*lastUsedAt)
	if elapsed < 0 {
		return Eligibility{Eligible: false, Remaining: d}
	}
	if elapsed >= d {
		return Eligibility{Eligible: true}
	}
	return Eligibility{Eligible: false, Remaining: d - elapsed}
}

// RemainingSeconds rounds the remaining wait up to whole seconds for display
func (e Eligibility) RemainingSeconds() int {
	if e.Remaining <= 0 {
		return 0
	}
	secs := e.Remaining / time.Second
	if e.Remaining%time.Second != 0 {
		secs++
	}
	return int(secs)
}

// NextAvailable returns when the action becomes eligible, relative to now
func (e Eligibility) NextAvailable(now time.Time) time.Time {
	if e.Eligible {
		return now
	}
	return now.Add(e.Remaining)
}
