package domain

// WalletUpdatedPayload is published after every committed balance change
type WalletUpdatedPayload struct {
	UserID  string `json:"user_id"`
	AuthID  string `json:"auth_id"`
	Balance int    `json:"balance"`
	Delta   int    `json:"delta"`
	Source  Source `json:"source"`
}

// RedeemUpdatedPayload is published when a redeem session changes state
type RedeemUpdatedPayload struct {
	SessionID string             `json:"session_id"`
	AuthID    string             `json:"auth_id"`
	State     RedeemSessionState `json:"state"`
}
