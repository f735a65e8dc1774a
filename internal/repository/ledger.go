package repository

import (
	"context"

	"github.com/osse101/CoinQuest_Go/internal/domain"
)

// LedgerTotals holds aggregated ledger amounts for one user
type LedgerTotals struct {
	Credited int
	Debited  int
	Count    int
}

// Ledger defines the interface for ledger reads and transactional writes
type Ledger interface {
	GetProfileByAuthID(ctx context.Context, authID string) (*domain.Profile, error)
	ListTransactions(ctx context.Context, userID string, limit int) ([]domain.Transaction, error)
	GetLedgerTotals(ctx context.Context, userID string) (*LedgerTotals, error)
	BeginTx(ctx context.Context) (Tx, error)
}
