package domain

import "time"

// RedeemCode is a catalog entry exchangeable for a secret code value.
// Value is only populated on reveal.
type RedeemCode struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	CoinCost int    `json:"coin_cost"`
	Value    string `json:"-"`
	IsActive bool   `json:"is_active"`
}

// RedeemSessionState is the persisted lifecycle of a redeem session
type RedeemSessionState string

const (
	RedeemSessionActive    RedeemSessionState = "active"
	RedeemSessionRevealed  RedeemSessionState = "revealed"
	RedeemSessionCancelled RedeemSessionState = "cancelled"
)

// RedeemSession tracks one purchase of a redeem code through its verification steps
type RedeemSession struct {
	ID         string             `json:"id"`
	UserID     string             `json:"user_id"`
	CodeID     string             `json:"code_id"`
	CodeName   string             `json:"code_name"`
	CoinCost   int                `json:"coin_cost"`
	State      RedeemSessionState `json:"state"`
	StartedAt  time.Time          `json:"started_at"`
	FinishedAt *time.Time         `json:"finished_at,omitempty"`

	// TransactionID is the debit that opened the session
	TransactionID string `json:"-"`
}
