package ledger

import (
	"context"
	"fmt"

	"github.com/osse101/CoinQuest_Go/internal/domain"
	"github.com/osse101/CoinQuest_Go/internal/logger"
	"github.com/osse101/CoinQuest_Go/internal/repository"
	"github.com/osse101/CoinQuest_Go/internal/utils"
)

// Service defines ledger read operations
type Service interface {
	History(ctx context.Context, authID string, limit int) ([]domain.Transaction, error)
	Summary(ctx context.Context, authID string) (*domain.LedgerSummary, error)
}

type service struct {
	repo repository.Ledger
}

// NewService creates a new ledger service
func NewService(repo repository.Ledger) Service {
	return &service{repo: repo}
}

// History returns the most recent transactions, newest first.
// A non-positive limit uses DefaultHistoryLimit.
func (s *service) History(ctx context.Context, authID string, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	limit = utils.ClampInt(limit, 1, MaxHistoryLimit)

	profile, err := s.repo.GetProfileByAuthID(ctx, authID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetProfileFailed, err)
	}

	txns, err := s.repo.ListTransactions(ctx, profile.ID, limit)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListTransactionsFailed, err)
	}
	return txns, nil
}

// Summary checks that credits minus debits equals the stored balance.
// Profiles start at zero coins, so no opening balance is involved.
func (s *service) Summary(ctx context.Context, authID string) (*domain.LedgerSummary, error) {
	profile, err := s.repo.GetProfileByAuthID(ctx, authID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetProfileFailed, err)
	}

	totals, err := s.repo.GetLedgerTotals(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetTotalsFailed, err)
	}

	summary := &domain.LedgerSummary{
		UserID:        profile.ID,
		TotalCredited: totals.Credited,
		TotalDebited:  totals.Debited,
		Balance:       profile.Coins,
		EntryCount:    totals.Count,
		Consistent:    totals.Credited-totals.Debited == profile.Coins,
	}
	if !summary.Consistent {
		logger.FromContext(ctx).Warn(LogMsgLedgerInconsistent,
			"user_id", profile.ID,
			"credited", totals.Credited,
			"debited", totals.Debited,
			"balance", profile.Coins)
	}
	return summary, nil
}
