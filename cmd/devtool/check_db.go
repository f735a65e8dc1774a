package main

import (
	"context"
	"fmt"
	"time"
)

const (
	checkDBAttempts = 30
	checkDBInterval = time.Second
)

type CheckDBCommand struct{}

func (c *CheckDBCommand) Name() string {
	return "check-db"
}

func (c *CheckDBCommand) Description() string {
	return "Wait until the database accepts connections"
}

func (c *CheckDBCommand) Run(args []string) error {
	PrintHeader("Checking database...")
	ctx := context.Background()

	_, pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	for i := 1; i <= checkDBAttempts; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, checkDBInterval)
		err = pool.Ping(pingCtx)
		cancel()
		if err == nil {
			PrintSuccess("Database is ready")
			return nil
		}
		PrintInfo("Waiting for database (%d/%d)...", i, checkDBAttempts)
		time.Sleep(checkDBInterval)
	}
	return fmt.Errorf("database not ready after %d attempts: %w", checkDBAttempts, err)
}
