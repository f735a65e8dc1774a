package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/CoinQuest_Go/migrations"
)

// Migrate runs a goose command ("up", "down", "status", "reset") against the embedded migrations
func Migrate(ctx context.Context, pool *pgxpool.Pool, command string) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(MigrationDialect); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetDialect, err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	var err error
	switch command {
	case "up":
		err = goose.UpContext(ctx, db, MigrationDir)
	case "down":
		err = goose.DownContext(ctx, db, MigrationDir)
	case "status":
		err = goose.StatusContext(ctx, db, MigrationDir)
	case "reset":
		err = goose.ResetContext(ctx, db, MigrationDir)
	default:
		return fmt.Errorf("%s: %q", ErrMsgUnknownMigrateCommand, command)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToGetVersion, err)
	}
	slog.Default().Info(LogMsgMigrationsApplied, "command", command, "version", version)
	return nil
}
