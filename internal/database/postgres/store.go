package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CoinQuest_Go/internal/domain"
	"github.com/osse101/CoinQuest_Go/internal/repository"
)

// Store implements every repository interface on a pgx pool
type Store struct {
	db *pgxpool.Pool
}

var (
	_ repository.Profile     = (*Store)(nil)
	_ repository.Ledger      = (*Store)(nil)
	_ repository.Redeem      = (*Store)(nil)
	_ repository.Maintenance = (*Store)(nil)
)

// NewStore creates a new Store
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Ping checks database connectivity
func (s *Store) Ping(ctx context.Context) error {
	return wrapErr(s.db.Ping(ctx), "ping", nil)
}

// BeginTx starts a transaction. Callers must lock the user row with GetProfileForUpdate first.
func (s *Store) BeginTx(ctx context.Context) (repository.Tx, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, wrapErr(err, ErrMsgFailedToBeginTransaction, nil)
	}
	return &pgTx{tx: tx}, nil
}

// GetProfileByAuthID reads a profile without locking
func (s *Store) GetProfileByAuthID(ctx context.Context, authID string) (*domain.Profile, error) {
	p, err := scanProfile(s.db.QueryRow(ctx, SQLGetProfileByAuthID, authID))
	if err != nil {
		return nil, wrapErr(err, ErrMsgFailedToGetProfile, domain.ErrUserNotFound)
	}
	return p, nil
}

// CreateProfile inserts a zero-balance profile, or returns the existing one for authID
func (s *Store) CreateProfile(ctx context.Context, authID, username string) (*domain.Profile, error) {
	if _, err := s.db.Exec(ctx, SQLCreateProfile, authID, username); err != nil {
		return nil, wrapErr(err, ErrMsgFailedToCreateProfile, nil)
	}
	return s.GetProfileByAuthID(ctx, authID)
}

// GetAdCooldowns returns last use per ad slot; unused slots are absent
func (s *Store) GetAdCooldowns(ctx context.Context, userID string) (map[string]time.Time, error) {
	rows, err := s.db.Query(ctx, SQLGetAdCooldowns, userID)
	if err != nil {
		return nil, wrapErr(err, ErrMsgFailedToGetAdCooldowns, nil)
	}
	defer rows.Close()

	out := make(map[string]time.Time, domain.AdSlotCount)
	for rows.Next() {
		var slot string
		var usedAt time.Time
		if err := rows.Scan(&slot, &usedAt); err != nil {
			return nil, wrapErr(err, ErrMsgFailedToGetAdCooldowns, nil)
		}
		out[slot] = usedAt
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(err, ErrMsgFailedToGetAdCooldowns, nil)
	}
	return out, nil
}

// ListTransactions returns the newest transactions first
func (s *Store) ListTransactions(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	rows, err := s.db.Query(ctx, SQLListTransactions, userID, limit)
	if err != nil {
		return nil, wrapErr(err, ErrMsgFailedToListTransactions, nil)
	}
	defer rows.Close()

	txns := make([]domain.Transaction, 0, limit)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, wrapErr(err, ErrMsgFailedToListTransactions, nil)
		}
		txns = append(txns, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(err, ErrMsgFailedToListTransactions, nil)
	}
	return txns, nil
}

// GetLedgerTotals sums credits and debits over the user's whole ledger
func (s *Store) GetLedgerTotals(ctx context.Context, userID string) (*repository.LedgerTotals, error) {
	var totals repository.LedgerTotals
	if err := s.db.QueryRow(ctx, SQLGetLedgerTotals, userID).Scan(&totals.Credited, &totals.Debited, &totals.Count); err != nil {
		return nil, wrapErr(err, ErrMsgFailedToGetLedgerTotals, nil)
	}
	return &totals, nil
}

// ListRedeemCodes returns active codes ordered by cost ascending
func (s *Store) ListRedeemCodes(ctx context.Context) ([]domain.RedeemCode, error) {
	rows, err := s.db.Query(ctx, SQLListRedeemCodes)
	if err != nil {
		return nil, wrapErr(err, ErrMsgFailedToListRedeemCodes, nil)
	}
	defer rows.Close()

	var codes []domain.RedeemCode
	for rows.Next() {
		var c domain.RedeemCode
		if err := rows.Scan(&c.ID, &c.Name, &c.CoinCost, &c.Value, &c.IsActive); err != nil {
			return nil, wrapErr(err, ErrMsgFailedToListRedeemCodes, nil)
		}
		codes = append(codes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(err, ErrMsgFailedToListRedeemCodes, nil)
	}
	return codes, nil
}

// GetActiveRedeemSession returns nil when the user has no unfinished flow
func (s *Store) GetActiveRedeemSession(ctx context.Context, userID string) (*domain.RedeemSession, error) {
	return getActiveRedeemSession(ctx, s.db, userID)
}

// GetRedeemSession reads one session by id
func (s *Store) GetRedeemSession(ctx context.Context, sessionID string) (*domain.RedeemSession, error) {
	session, err := scanSession(s.db.QueryRow(ctx, SQLGetRedeemSession, sessionID))
	if err != nil {
		return nil, wrapErr(err, ErrMsgFailedToGetRedeemSession, domain.ErrRedeemSessionNotFound)
	}
	return session, nil
}

// ResetExpiredStreaks zeroes streaks whose last claim is older than before
func (s *Store) ResetExpiredStreaks(ctx context.Context, before time.Time) (int64, error) {
	tag, err := s.db.Exec(ctx, SQLResetExpiredStreaks, before)
	if err != nil {
		return 0, wrapErr(err, ErrMsgFailedToResetStreaks, nil)
	}
	return tag.RowsAffected(), nil
}

// CancelStaleRedeemSessions cancels flows abandoned since before startedBefore
func (s *Store) CancelStaleRedeemSessions(ctx context.Context, startedBefore, now time.Time) (int64, error) {
	tag, err := s.db.Exec(ctx, SQLCancelStaleRedeemSessions, startedBefore, now)
	if err != nil {
		return 0, wrapErr(err, ErrMsgFailedToCancelSessions, nil)
	}
	return tag.RowsAffected(), nil
}

// querier is satisfied by both the pool and a transaction
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func getActiveRedeemSession(ctx context.Context, q querier, userID string) (*domain.RedeemSession, error) {
	session, err := scanSession(q.QueryRow(ctx, SQLGetActiveRedeemSession, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr(err, ErrMsgFailedToGetRedeemSession, nil)
	}
	return session, nil
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(&p.ID, &p.AuthID, &p.Username, &p.Coins, &p.DailyStreak,
		&p.LastDailyReward, &p.LastSpin, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Source, &t.Description,
		&t.IdempotencyKey, &t.BalanceAfter, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func scanSession(row pgx.Row) (*domain.RedeemSession, error) {
	var s domain.RedeemSession
	var txnID *string
	err := row.Scan(&s.ID, &s.UserID, &s.CodeID, &s.CodeName, &s.CoinCost, &s.State, &s.StartedAt, &s.FinishedAt, &txnID)
	if err != nil {
		return nil, err
	}
	if txnID != nil {
		s.TransactionID = *txnID
	}
	return &s, nil
}

func rowUpdated(affected int64, msg string) error {
	if affected == 0 {
		return fmt.Errorf("%s: %s", msg, ErrMsgRowNotUpdated)
	}
	return nil
}
