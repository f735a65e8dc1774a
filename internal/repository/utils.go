package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/CoinQuest_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error.
// Safe to defer after a successful Commit.
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return
		}
		logger.FromContext(ctx).Error(LogMsgRollbackFailed, "error", err)
	}
}
