package shop

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/CoinQuest_Go/internal/domain"
	"github.com/osse101/CoinQuest_Go/internal/event"
	"github.com/osse101/CoinQuest_Go/internal/ledger"
	"github.com/osse101/CoinQuest_Go/internal/logger"
	"github.com/osse101/CoinQuest_Go/internal/metrics"
	"github.com/osse101/CoinQuest_Go/internal/repository"
)

// PurchaseResult reports a completed purchase
type PurchaseResult struct {
	Item          domain.ShopItem `json:"item"`
	Balance       int             `json:"balance"`
	TransactionID string          `json:"transaction_id"`
	Replayed      bool            `json:"replayed"`
}

// Service defines shop operations
type Service interface {
	ListItems(ctx context.Context) []domain.ShopItem
	Purchase(ctx context.Context, authID, itemID, idempotencyKey string) (*PurchaseResult, error)
}

// Repository is what purchases need from storage
type Repository interface {
	BeginTx(ctx context.Context) (repository.Tx, error)
}

type service struct {
	repo    Repository
	catalog *Catalog
	writer  *ledger.Writer
	bus     event.Bus
}

// NewService creates a shop service over a loaded catalog
func NewService(repo Repository, catalog *Catalog, bus event.Bus) Service {
	return &service{
		repo:    repo,
		catalog: catalog,
		writer:  ledger.NewWriter(),
		bus:     bus,
	}
}

func (s *service) ListItems(ctx context.Context) []domain.ShopItem {
	return s.catalog.Items()
}

// Purchase debits the item cost under the user row lock. The balance check happens
// inside the transaction, immediately before the write.
func (s *service) Purchase(ctx context.Context, authID, itemID, idempotencyKey string) (*PurchaseResult, error) {
	log := logger.FromContext(ctx)

	item, err := s.catalog.Get(itemID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	profile, err := tx.GetProfileForUpdate(ctx, authID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLockProfileFailed, err)
	}

	prior, err := s.writer.FindReplay(ctx, tx, profile.ID, idempotencyKey, domain.SourceShop)
	if err != nil {
		return nil, err
	}
	if prior != nil {
		if prior.Amount != item.Cost || prior.Description != purchaseDescription(item) {
			return nil, fmt.Errorf("%w: key %q was used to buy a different item", domain.ErrIdempotencyConflict, idempotencyKey)
		}
		log.Info(LogMsgPurchaseReplayed, "item", item.ID, "user_id", profile.ID)
		metrics.IdempotentReplays.WithLabelValues(string(domain.SourceShop)).Inc()
		return &PurchaseResult{Item: item, Balance: profile.Coins, TransactionID: prior.ID, Replayed: true}, nil
	}

	txn, err := s.writer.Apply(ctx, tx, profile, ledger.Entry{
		Delta:          -item.Cost,
		Source:         domain.SourceShop,
		Description:    purchaseDescription(item),
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientBalance) {
			metrics.InsufficientBalanceRejections.WithLabelValues(string(domain.SourceShop)).Inc()
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitFailed, err)
	}

	log.Info(LogMsgPurchaseCompleted, "item", item.ID, "user_id", profile.ID, "balance", profile.Coins)
	if err := s.bus.Publish(ctx, event.NewWalletUpdatedEvent(profile.ID, profile.AuthID, profile.Coins, -item.Cost, domain.SourceShop)); err != nil {
		log.Warn(LogMsgPublishFailed, "error", err)
	}

	return &PurchaseResult{Item: item, Balance: profile.Coins, TransactionID: txn.ID}, nil
}

func purchaseDescription(item domain.ShopItem) string {
	return fmt.Sprintf(DescFmtPurchased, item.Name)
}
