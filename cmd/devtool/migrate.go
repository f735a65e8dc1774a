package main

import (
	"context"
	"fmt"

	"github.com/osse101/CoinQuest_Go/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Run embedded database migrations (up, down, status, reset)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, down, status, reset")
	}

	ctx := context.Background()
	_, pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	PrintHeader("Migrate " + args[0])
	if err := database.Migrate(ctx, pool, args[0]); err != nil {
		return err
	}
	PrintSuccess("Migration %s complete", args[0])
	return nil
}
