package shop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CoinQuest_Go/internal/domain"
	"github.com/osse101/CoinQuest_Go/internal/event"
	"github.com/osse101/CoinQuest_Go/mocks"
)

func newTestService(t *testing.T) (Service, *mocks.MockTx) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	repo := mocks.NewMockRepository(t)
	tx := mocks.NewMockTx(t)
	repo.On("BeginTx", mock.Anything).Return(tx, nil).Maybe()
	tx.On("Rollback", mock.Anything).Return(nil).Maybe()

	return NewService(repo, catalog, event.NewMemoryBus()), tx
}

func TestPurchase_Success(t *testing.T) {
	ctx := context.Background()
	svc, tx := newTestService(t)

	tx.On("GetProfileForUpdate", ctx, "auth-1").Return(&domain.Profile{ID: "user-1", AuthID: "auth-1", Coins: 1000}, nil)
	tx.On("GetTransactionByIdempotencyKey", ctx, "user-1", "buy-1").Return(nil, nil)
	tx.On("UpdateBalance", ctx, "user-1", 200).Return(nil)
	tx.On("InsertTransaction", ctx, mock.MatchedBy(func(txn *domain.Transaction) bool {
		return txn.Type == domain.DirectionDebit && txn.Amount == 800 && txn.Description == "Purchased: Ad Skip Pass"
	})).Return(nil)
	tx.On("Commit", ctx).Return(nil)

	res, err := svc.Purchase(ctx, "auth-1", "bonus2", "buy-1")
	require.NoError(t, err)
	assert.Equal(t, 200, res.Balance)
	assert.False(t, res.Replayed)
}

func TestPurchase_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	svc, tx := newTestService(t)

	tx.On("GetProfileForUpdate", ctx, "auth-1").Return(&domain.Profile{ID: "user-1", Coins: 799}, nil)
	tx.On("GetTransactionByIdempotencyKey", ctx, "user-1", "buy-2").Return(nil, nil)

	_, err := svc.Purchase(ctx, "auth-1", "bonus2", "buy-2")
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	tx.AssertNotCalled(t, "InsertTransaction", mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestPurchase_UnknownItem(t *testing.T) {
	svc, tx := newTestService(t)

	_, err := svc.Purchase(context.Background(), "auth-1", "ghost", "k")
	assert.ErrorIs(t, err, domain.ErrShopItemNotFound)
	tx.AssertNotCalled(t, "GetProfileForUpdate", mock.Anything, mock.Anything)
}

func TestPurchase_Replay(t *testing.T) {
	ctx := context.Background()
	svc, tx := newTestService(t)

	tx.On("GetProfileForUpdate", ctx, "auth-1").Return(&domain.Profile{ID: "user-1", Coins: 200}, nil)
	tx.On("GetTransactionByIdempotencyKey", ctx, "user-1", "buy-1").
		Return(&domain.Transaction{ID: "t-1", Source: domain.SourceShop, Amount: 800, Type: domain.DirectionDebit, Description: "Purchased: Ad Skip Pass"}, nil)

	res, err := svc.Purchase(ctx, "auth-1", "bonus2", "buy-1")
	require.NoError(t, err)
	assert.True(t, res.Replayed)
	assert.Equal(t, "bonus2", res.Item.ID)
	assert.Equal(t, 200, res.Balance)
	assert.Equal(t, "t-1", res.TransactionID)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestPurchase_ReplayWithDifferentItem(t *testing.T) {
	ctx := context.Background()
	svc, tx := newTestService(t)

	// buy-1 originally paid for the Ad Skip Pass
	tx.On("GetProfileForUpdate", ctx, "auth-1").Return(&domain.Profile{ID: "user-1", Coins: 200}, nil)
	tx.On("GetTransactionByIdempotencyKey", ctx, "user-1", "buy-1").
		Return(&domain.Transaction{ID: "t-1", Source: domain.SourceShop, Amount: 800, Type: domain.DirectionDebit, Description: "Purchased: Ad Skip Pass"}, nil)

	other := otherItem(t, "bonus2")
	res, err := svc.Purchase(ctx, "auth-1", other.ID, "buy-1")
	assert.ErrorIs(t, err, domain.ErrIdempotencyConflict)
	assert.Nil(t, res)
	tx.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func otherItem(t *testing.T, not string) domain.ShopItem {
	t.Helper()
	catalog, err := DefaultCatalog()
	require.NoError(t, err)
	for _, item := range catalog.Items() {
		if item.ID != not {
			return item
		}
	}
	t.Fatalf("catalog has no item other than %q", not)
	return domain.ShopItem{}
}
