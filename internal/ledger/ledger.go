package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CoinQuest_Go/internal/domain"
)

// Store is the part of a repository transaction the writer needs
type Store interface {
	UpdateBalance(ctx context.Context, userID string, coins int) error
	InsertTransaction(ctx context.Context, txn *domain.Transaction) error
	GetTransactionByIdempotencyKey(ctx context.Context, userID, key string) (*domain.Transaction, error)
}

// Entry describes one balance change. Delta is negative for debits.
type Entry struct {
	Delta          int
	Source         domain.Source
	Description    string
	IdempotencyKey string
}

// ApplyDelta returns balance+delta, or ErrInsufficientBalance if the result would be negative
func ApplyDelta(balance, delta int) (int, error) {
	if delta == 0 {
		return balance, domain.ErrZeroDelta
	}
	next := balance + delta
	if next < 0 {
		return balance, fmt.Errorf("%w: balance %d, required %d", domain.ErrInsufficientBalance, balance, -delta)
	}
	return next, nil
}

// Replay folds transactions onto an initial balance, rejecting any step that goes negative
func Replay(initial int, txns []domain.Transaction) (int, error) {
	balance := initial
	for i, t := range txns {
		next, err := ApplyDelta(balance, t.Delta())
		if err != nil {
			return balance, fmt.Errorf("entry %d: %w", i, err)
		}
		balance = next
	}
	return balance, nil
}

// Writer applies balance changes and their transaction records inside a caller-owned transaction
type Writer struct {
	now func() time.Time
}

// NewWriter creates a ledger writer
func NewWriter() *Writer {
	return &Writer{now: time.Now}
}

// FindReplay returns the transaction already recorded under key, if any.
// A key reused for a different source is ErrIdempotencyConflict.
func (w *Writer) FindReplay(ctx context.Context, store Store, userID, key string, source domain.Source) (*domain.Transaction, error) {
	if key == "" {
		return nil, nil
	}
	existing, err := store.GetTransactionByIdempotencyKey(ctx, userID, key)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgIdempotencyLookupFailed, err)
	}
	if existing == nil {
		return nil, nil
	}
	if existing.Source != source {
		return nil, fmt.Errorf("%w: key %q", domain.ErrIdempotencyConflict, key)
	}
	return existing, nil
}

// Apply persists the new balance and appends the matching transaction record.
// profile must have been read with a row lock in the same transaction; its Coins field is updated on success.
func (w *Writer) Apply(ctx context.Context, store Store, profile *domain.Profile, e Entry) (*domain.Transaction, error) {
	if !e.Source.Valid() {
		return nil, fmt.Errorf("%w: source %q", domain.ErrInvalidInput, e.Source)
	}

	newBalance, err := ApplyDelta(profile.Coins, e.Delta)
	if err != nil {
		return nil, err
	}

	txn := &domain.Transaction{
		ID:           uuid.NewString(),
		UserID:       profile.ID,
		Type:         domain.DirectionCredit,
		Amount:       e.Delta,
		Source:       e.Source,
		Description:  e.Description,
		BalanceAfter: newBalance,
		CreatedAt:    w.now(),
	}
	if e.Delta < 0 {
		txn.Type = domain.DirectionDebit
		txn.Amount = -e.Delta
	}
	if e.IdempotencyKey != "" {
		key := e.IdempotencyKey
		txn.IdempotencyKey = &key
	}

	if err := store.UpdateBalance(ctx, profile.ID, newBalance); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateBalanceFailed, err)
	}
	if err := store.InsertTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf(ErrMsgInsertTransactionFailed, err)
	}

	profile.Coins = newBalance
	return txn, nil
}
