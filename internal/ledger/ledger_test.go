package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CoinQuest_Go/internal/domain"
	"github.com/osse101/CoinQuest_Go/mocks"
)

func TestApplyDelta(t *testing.T) {
	tests := []struct {
		name    string
		balance int
		delta   int
		want    int
		wantErr error
	}{
		{"credit", 100, 25, 125, nil},
		{"debit to zero", 1000, -1000, 0, nil},
		{"debit below zero", 999, -1000, 999, domain.ErrInsufficientBalance},
		{"zero delta", 10, 0, 10, domain.ErrZeroDelta},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyDelta(tt.balance, tt.delta)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReplay_BalanceMatchesCreditsMinusDebits(t *testing.T) {
	txns := []domain.Transaction{
		{Type: domain.DirectionCredit, Amount: 50, Source: domain.SourceDailyReward},
		{Type: domain.DirectionCredit, Amount: 25, Source: domain.SourceAd},
		{Type: domain.DirectionDebit, Amount: 60, Source: domain.SourceShop},
		{Type: domain.DirectionCredit, Amount: 250, Source: domain.SourceSpin},
	}

	credits, debits := 0, 0
	for _, txn := range txns {
		if txn.Type == domain.DirectionCredit {
			credits += txn.Amount
		} else {
			debits += txn.Amount
		}
	}

	got, err := Replay(10, txns)
	require.NoError(t, err)
	assert.Equal(t, 10+credits-debits, got)
}

func TestReplay_RejectsNegative(t *testing.T) {
	_, err := Replay(0, []domain.Transaction{{Type: domain.DirectionDebit, Amount: 1, Source: domain.SourceShop}})
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestWriter_Apply(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	w := &Writer{now: func() time.Time { return fixed }}

	t.Run("debit writes balance and record", func(t *testing.T) {
		store := mocks.NewMockTx(t)
		profile := &domain.Profile{ID: "user-1", Coins: 1000}

		store.On("UpdateBalance", ctx, "user-1", 0).Return(nil)
		store.On("InsertTransaction", ctx, mock.MatchedBy(func(txn *domain.Transaction) bool {
			return txn.Type == domain.DirectionDebit &&
				txn.Amount == 1000 &&
				txn.Source == domain.SourceRedeem &&
				txn.BalanceAfter == 0 &&
				txn.IdempotencyKey != nil && *txn.IdempotencyKey == "key-1" &&
				txn.CreatedAt.Equal(fixed)
		})).Return(nil)

		txn, err := w.Apply(ctx, store, profile, Entry{Delta: -1000, Source: domain.SourceRedeem, Description: "Redeemed", IdempotencyKey: "key-1"})
		require.NoError(t, err)
		assert.Equal(t, 0, profile.Coins)
		assert.Equal(t, -1000, txn.Delta())
	})

	t.Run("insufficient balance writes nothing", func(t *testing.T) {
		store := mocks.NewMockTx(t)
		profile := &domain.Profile{ID: "user-1", Coins: 999}

		_, err := w.Apply(ctx, store, profile, Entry{Delta: -1000, Source: domain.SourceRedeem})
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
		assert.Equal(t, 999, profile.Coins)
		store.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything)
		store.AssertNotCalled(t, "InsertTransaction", mock.Anything, mock.Anything)
	})

	t.Run("insert failure leaves profile untouched", func(t *testing.T) {
		store := mocks.NewMockTx(t)
		profile := &domain.Profile{ID: "user-1", Coins: 10}

		store.On("UpdateBalance", ctx, "user-1", 35).Return(nil)
		store.On("InsertTransaction", ctx, mock.Anything).Return(errors.New("db down"))

		_, err := w.Apply(ctx, store, profile, Entry{Delta: 25, Source: domain.SourceAd})
		assert.Error(t, err)
		assert.Equal(t, 10, profile.Coins)
	})

	t.Run("unknown source", func(t *testing.T) {
		store := mocks.NewMockTx(t)
		_, err := w.Apply(ctx, store, &domain.Profile{ID: "u"}, Entry{Delta: 5, Source: "lottery"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestWriter_FindReplay(t *testing.T) {
	ctx := context.Background()
	w := NewWriter()

	t.Run("empty key skips lookup", func(t *testing.T) {
		store := mocks.NewMockTx(t)
		got, err := w.FindReplay(ctx, store, "user-1", "", domain.SourceAd)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("matching source replays", func(t *testing.T) {
		store := mocks.NewMockTx(t)
		prior := &domain.Transaction{ID: "t1", Source: domain.SourceSpin, Amount: 75}
		store.On("GetTransactionByIdempotencyKey", ctx, "user-1", "k").Return(prior, nil)

		got, err := w.FindReplay(ctx, store, "user-1", "k", domain.SourceSpin)
		require.NoError(t, err)
		assert.Equal(t, prior, got)
	})

	t.Run("different source conflicts", func(t *testing.T) {
		store := mocks.NewMockTx(t)
		store.On("GetTransactionByIdempotencyKey", ctx, "user-1", "k").
			Return(&domain.Transaction{Source: domain.SourceShop}, nil)

		_, err := w.FindReplay(ctx, store, "user-1", "k", domain.SourceSpin)
		assert.ErrorIs(t, err, domain.ErrIdempotencyConflict)
	})

	t.Run("unused key", func(t *testing.T) {
		store := mocks.NewMockTx(t)
		store.On("GetTransactionByIdempotencyKey", ctx, "user-1", "k").Return(nil, nil)

		got, err := w.FindReplay(ctx, store, "user-1", "k", domain.SourceSpin)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
