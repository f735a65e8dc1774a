package repository

import (
	"context"
	"time"

	"github.com/osse101/CoinQuest_Go/internal/domain"
)

// Tx defines the interface for transactional operations.
// Every balance mutation runs inside one Tx that first locks the user row with GetProfileForUpdate.
type Tx interface {
	GetProfileForUpdate(ctx context.Context, authID string) (*domain.Profile, error)
	UpdateBalance(ctx context.Context, userID string, coins int) error
	UpdateDailyClaim(ctx context.Context, userID string, streak int, claimedAt time.Time) error
	UpdateLastSpin(ctx context.Context, userID string, spunAt time.Time) error

	GetAdCooldown(ctx context.Context, userID, slot string) (*time.Time, error)
	UpsertAdCooldown(ctx context.Context, userID, slot string, usedAt time.Time) error

	StartVideoView(ctx context.Context, view *domain.VideoView) error
	GetVideoView(ctx context.Context, userID string) (*domain.VideoView, error)
	MarkVideoViewClaimed(ctx context.Context, userID string, claimedAt time.Time) error

	InsertTransaction(ctx context.Context, txn *domain.Transaction) error
	GetTransactionByIdempotencyKey(ctx context.Context, userID, key string) (*domain.Transaction, error)

	GetRedeemCode(ctx context.Context, codeID string) (*domain.RedeemCode, error)
	GetActiveRedeemSession(ctx context.Context, userID string) (*domain.RedeemSession, error)
	GetRedeemSessionForUpdate(ctx context.Context, sessionID string) (*domain.RedeemSession, error)
	GetRedeemSessionByTransaction(ctx context.Context, transactionID string) (*domain.RedeemSession, error)
	CreateRedeemSession(ctx context.Context, session *domain.RedeemSession) error
	FinishRedeemSession(ctx context.Context, sessionID string, state domain.RedeemSessionState, finishedAt time.Time) error

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
