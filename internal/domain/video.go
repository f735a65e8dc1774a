package domain

import "time"

// VideoView is the server-issued session a video claim has to present.
// A user holds at most one; starting a new view replaces it.
type VideoView struct {
	ID        string     `json:"view_session_id"`
	UserID    string     `json:"-"`
	StartedAt time.Time  `json:"started_at"`
	ClaimedAt *time.Time `json:"claimed_at,omitempty"`
}
