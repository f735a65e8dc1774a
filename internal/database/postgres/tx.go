package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/CoinQuest_Go/internal/domain"
)

// pgTx implements repository.Tx on a pgx transaction
type pgTx struct {
	tx pgx.Tx
}

// GetProfileForUpdate reads the profile and holds its row lock until commit or rollback
func (t *pgTx) GetProfileForUpdate(ctx context.Context, authID string) (*domain.Profile, error) {
	p, err := scanProfile(t.tx.QueryRow(ctx, SQLGetProfileForUpdate, authID))
	if err != nil {
		return nil, wrapErr(err, ErrMsgFailedToGetProfile, domain.ErrUserNotFound)
	}
	return p, nil
}

func (t *pgTx) UpdateBalance(ctx context.Context, userID string, coins int) error {
	tag, err := t.tx.Exec(ctx, SQLUpdateBalance, userID, coins)
	if err != nil {
		return wrapErr(err, ErrMsgFailedToUpdateBalance, nil)
	}
	return rowUpdated(tag.RowsAffected(), ErrMsgFailedToUpdateBalance)
}

func (t *pgTx) UpdateDailyClaim(ctx context.Context, userID string, streak int, claimedAt time.Time) error {
	tag, err := t.tx.Exec(ctx, SQLUpdateDailyClaim, userID, streak, claimedAt)
	if err != nil {
		return wrapErr(err, ErrMsgFailedToUpdateDailyClaim, nil)
	}
	return rowUpdated(tag.RowsAffected(), ErrMsgFailedToUpdateDailyClaim)
}

func (t *pgTx) UpdateLastSpin(ctx context.Context, userID string, spunAt time.Time) error {
	tag, err := t.tx.Exec(ctx, SQLUpdateLastSpin, userID, spunAt)
	if err != nil {
		return wrapErr(err, ErrMsgFailedToUpdateLastSpin, nil)
	}
	return rowUpdated(tag.RowsAffected(), ErrMsgFailedToUpdateLastSpin)
}

// GetAdCooldown returns nil when the slot has never been used
func (t *pgTx) GetAdCooldown(ctx context.Context, userID, slot string) (*time.Time, error) {
	var usedAt time.Time
	err := t.tx.QueryRow(ctx, SQLGetAdCooldown, userID, slot).Scan(&usedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr(err, ErrMsgFailedToGetAdCooldowns, nil)
	}
	return &usedAt, nil
}

func (t *pgTx) UpsertAdCooldown(ctx context.Context, userID, slot string, usedAt time.Time) error {
	if _, err := t.tx.Exec(ctx, SQLUpsertAdCooldown, userID, slot, usedAt); err != nil {
		return wrapErr(err, ErrMsgFailedToUpsertAdCooldown, nil)
	}
	return nil
}

// StartVideoView replaces the user's view session
func (t *pgTx) StartVideoView(ctx context.Context, view *domain.VideoView) error {
	if _, err := t.tx.Exec(ctx, SQLStartVideoView, view.UserID, view.ID, view.StartedAt); err != nil {
		return wrapErr(err, ErrMsgFailedToStartVideoView, nil)
	}
	return nil
}

// GetVideoView returns nil when the user never started a view
func (t *pgTx) GetVideoView(ctx context.Context, userID string) (*domain.VideoView, error) {
	var v domain.VideoView
	err := t.tx.QueryRow(ctx, SQLGetVideoView, userID).Scan(&v.ID, &v.UserID, &v.StartedAt, &v.ClaimedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr(err, ErrMsgFailedToGetVideoView, nil)
	}
	return &v, nil
}

func (t *pgTx) MarkVideoViewClaimed(ctx context.Context, userID string, claimedAt time.Time) error {
	tag, err := t.tx.Exec(ctx, SQLMarkVideoViewClaimed, userID, claimedAt)
	if err != nil {
		return wrapErr(err, ErrMsgFailedToClaimVideoView, nil)
	}
	if tag.RowsAffected() == 0 {
		return wrapErr(pgx.ErrNoRows, ErrMsgFailedToClaimVideoView, domain.ErrVideoViewClaimed)
	}
	return nil
}

func (t *pgTx) InsertTransaction(ctx context.Context, txn *domain.Transaction) error {
	_, err := t.tx.Exec(ctx, SQLInsertTransaction,
		txn.ID, txn.UserID, txn.Type, txn.Amount, txn.Source, txn.Description,
		txn.IdempotencyKey, txn.BalanceAfter, txn.CreatedAt)
	if err != nil {
		return wrapErr(err, ErrMsgFailedToInsertTransaction, nil)
	}
	return nil
}

// GetTransactionByIdempotencyKey returns nil when the key is unused
func (t *pgTx) GetTransactionByIdempotencyKey(ctx context.Context, userID, key string) (*domain.Transaction, error) {
	txn, err := scanTransaction(t.tx.QueryRow(ctx, SQLGetTransactionByIdempotencyKey, userID, key))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr(err, ErrMsgFailedToGetTransaction, nil)
	}
	return txn, nil
}

// GetRedeemCode returns the code including its secret value, active or not
func (t *pgTx) GetRedeemCode(ctx context.Context, codeID string) (*domain.RedeemCode, error) {
	var c domain.RedeemCode
	err := t.tx.QueryRow(ctx, SQLGetRedeemCode, codeID).Scan(&c.ID, &c.Name, &c.CoinCost, &c.Value, &c.IsActive)
	if err != nil {
		return nil, wrapErr(err, ErrMsgFailedToGetRedeemCode, domain.ErrRedeemCodeNotFound)
	}
	return &c, nil
}

func (t *pgTx) GetActiveRedeemSession(ctx context.Context, userID string) (*domain.RedeemSession, error) {
	return getActiveRedeemSession(ctx, t.tx, userID)
}

func (t *pgTx) GetRedeemSessionForUpdate(ctx context.Context, sessionID string) (*domain.RedeemSession, error) {
	session, err := scanSession(t.tx.QueryRow(ctx, SQLGetRedeemSessionForUpdate, sessionID))
	if err != nil {
		return nil, wrapErr(err, ErrMsgFailedToGetRedeemSession, domain.ErrRedeemSessionNotFound)
	}
	return session, nil
}

// GetRedeemSessionByTransaction finds the session opened by a debit
func (t *pgTx) GetRedeemSessionByTransaction(ctx context.Context, transactionID string) (*domain.RedeemSession, error) {
	session, err := scanSession(t.tx.QueryRow(ctx, SQLGetRedeemSessionByTransaction, transactionID))
	if err != nil {
		return nil, wrapErr(err, ErrMsgFailedToGetRedeemSession, domain.ErrRedeemSessionNotFound)
	}
	return session, nil
}

func (t *pgTx) CreateRedeemSession(ctx context.Context, session *domain.RedeemSession) error {
	var txnID *string
	if session.TransactionID != "" {
		txnID = &session.TransactionID
	}
	_, err := t.tx.Exec(ctx, SQLCreateRedeemSession,
		session.ID, session.UserID, session.CodeID, session.CoinCost, session.State, session.StartedAt, txnID)
	if err != nil {
		return wrapErr(err, ErrMsgFailedToCreateSession, nil)
	}
	return nil
}

// FinishRedeemSession moves an active session to a terminal state
func (t *pgTx) FinishRedeemSession(ctx context.Context, sessionID string, state domain.RedeemSessionState, finishedAt time.Time) error {
	tag, err := t.tx.Exec(ctx, SQLFinishRedeemSession, sessionID, state, finishedAt)
	if err != nil {
		return wrapErr(err, ErrMsgFailedToFinishSession, nil)
	}
	if tag.RowsAffected() == 0 {
		return wrapErr(pgx.ErrNoRows, ErrMsgFailedToFinishSession, domain.ErrRedeemSessionClosed)
	}
	return nil
}

func (t *pgTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return wrapErr(err, ErrMsgFailedToCommitTransaction, nil)
	}
	return nil
}

// Rollback returns pgx.ErrTxClosed after a commit, which repository.SafeRollback ignores
func (t *pgTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
