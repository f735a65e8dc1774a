package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/CoinQuest_Go/internal/domain"
)

// wrapErr annotates err with msg and tags it with the matching domain error.
// notFound is used for pgx.ErrNoRows and may be nil.
func wrapErr(err error, msg string, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) && notFound != nil {
		return fmt.Errorf("%s: %w", msg, notFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == PgErrorCodeUniqueViolation && pgErr.ConstraintName == ConstraintOneActiveSession:
			return fmt.Errorf("%s: %w", msg, domain.ErrRedeemSessionActive)
		case pgErr.Code == PgErrorCodeUniqueViolation && pgErr.ConstraintName == ConstraintIdempotencyKey:
			return fmt.Errorf("%s: %w", msg, domain.ErrIdempotencyConflict)
		case pgErr.Code == PgErrorCodeCheckViolation && pgErr.ConstraintName == ConstraintCoinsNonNegative:
			return fmt.Errorf("%s: %w", msg, domain.ErrInsufficientBalance)
		}
		return fmt.Errorf("%s: %w", msg, err)
	}

	if isUnavailable(err) {
		return fmt.Errorf("%s: %w: %w", msg, domain.ErrBackendUnavailable, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// isUnavailable reports connection-level failures that are worth retrying as a whole
func isUnavailable(err error) bool {
	var connErr *pgconn.ConnectError
	return errors.As(err, &connErr) ||
		pgconn.Timeout(err) ||
		errors.Is(err, context.DeadlineExceeded)
}
