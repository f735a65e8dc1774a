package main

import (
	"context"
	"fmt"

	"github.com/osse101/CoinQuest_Go/internal/database/postgres"
	"github.com/osse101/CoinQuest_Go/internal/jobs"
)

type RunJobCommand struct{}

func (c *RunJobCommand) Name() string {
	return "run-job"
}

func (c *RunJobCommand) Description() string {
	return "Run a maintenance job once (streak_expiry, redeem_session_sweep)"
}

func (c *RunJobCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("job name required")
	}

	ctx := context.Background()
	cfg, pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()
	store := postgres.NewStore(pool)

	var job jobs.Job
	switch args[0] {
	case jobs.JobNameStreakExpiry:
		job = jobs.NewStreakExpiryJob(store, nil)
	case jobs.JobNameSessionSweep:
		job = jobs.NewSessionSweepJob(store, cfg.RedeemSessionTTL)
	default:
		return fmt.Errorf("unknown job %q", args[0])
	}

	rows, err := jobs.NewScheduler().RunNow(job)
	if err != nil {
		return err
	}
	PrintSuccess("%s affected %d rows", job.Name(), rows)
	return nil
}
