package domain

import "time"

// Profile is a user's wallet and reward state
type Profile struct {
	ID              string     `json:"id"`
	AuthID          string     `json:"auth_id"`
	Username        string     `json:"username"`
	Coins           int        `json:"coins"`
	DailyStreak     int        `json:"daily_streak"`
	LastDailyReward *time.Time `json:"last_daily_reward,omitempty"`
	LastSpin        *time.Time `json:"last_spin,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
