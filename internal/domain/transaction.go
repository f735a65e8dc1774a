package domain

import "time"

// Direction is the sign of a ledger entry
type Direction string

const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

// Source tags where a balance change came from
type Source string

const (
	SourceAd          Source = "ad"
	SourceVideo       Source = "video"
	SourceDailyReward Source = "daily_reward"
	SourceSpin        Source = "spin"
	SourceShop        Source = "shop"
	SourceRedeem      Source = "redeem"
)

// Valid reports whether s is a known source tag
func (s Source) Valid() bool {
	switch s {
	case SourceAd, SourceVideo, SourceDailyReward, SourceSpin, SourceShop, SourceRedeem:
		return true
	}
	return false
}

// Transaction is an immutable ledger record. Amount is always positive; Type carries the sign.
type Transaction struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Type           Direction `json:"type"`
	Amount         int       `json:"amount"`
	Source         Source    `json:"source"`
	Description    string    `json:"description"`
	IdempotencyKey *string   `json:"-"`
	BalanceAfter   int       `json:"balance_after"`
	CreatedAt      time.Time `json:"created_at"`
}

// Delta returns the signed balance change of the record
func (t Transaction) Delta() int {
	if t.Type == DirectionDebit {
		return -t.Amount
	}
	return t.Amount
}

// LedgerSummary aggregates a user's ledger for auditing
type LedgerSummary struct {
	UserID        string `json:"user_id"`
	TotalCredited int    `json:"total_credited"`
	TotalDebited  int    `json:"total_debited"`
	Balance       int    `json:"balance"`
	EntryCount    int    `json:"entry_count"`
	Consistent    bool   `json:"consistent"`
}
