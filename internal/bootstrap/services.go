package bootstrap

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/osse101/CoinQuest_Go/internal/config"
	"github.com/osse101/CoinQuest_Go/internal/cooldown"
	"github.com/osse101/CoinQuest_Go/internal/database/postgres"
	"github.com/osse101/CoinQuest_Go/internal/domain"
	"github.com/osse101/CoinQuest_Go/internal/event"
	"github.com/osse101/CoinQuest_Go/internal/jobs"
	"github.com/osse101/CoinQuest_Go/internal/ledger"
	"github.com/osse101/CoinQuest_Go/internal/profile"
	"github.com/osse101/CoinQuest_Go/internal/redeem"
	"github.com/osse101/CoinQuest_Go/internal/reward"
	"github.com/osse101/CoinQuest_Go/internal/shop"
)

// Services holds every domain service the HTTP layer needs
type Services struct {
	Profiles  profile.Service
	Cooldowns cooldown.Service
	Rewards   reward.Service
	Ledger    ledger.Service
	Shop      shop.Service
	Redeem    redeem.Service
}

// CooldownConfig maps the configured durations onto the cooldown package
func CooldownConfig(cfg *config.Config) cooldown.Config {
	return cooldown.Config{
		DevMode: cfg.DevMode,
		Cooldowns: map[domain.Action]time.Duration{
			domain.ActionDailyReward: cfg.DailyRewardCooldown,
			domain.ActionSpin:        cfg.SpinCooldown,
			domain.ActionAd:          cfg.AdCooldown,
			domain.ActionVideo:       cfg.VideoMinWatch,
		},
	}
}

// InitializeServices builds all services on top of the store
func InitializeServices(cfg *config.Config, store *postgres.Store, bus event.Bus) (*Services, error) {
	catalog, err := shop.LoadCatalog(cfg.ShopCatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	slog.Info(LogMsgCatalogLoaded, "items", len(catalog.Items()), "path", cfg.ShopCatalogPath)

	cooldowns := CooldownConfig(cfg)

	return &Services{
		Profiles: profile.NewService(store, profile.CacheConfig{
			Size: cfg.ProfileCacheSize,
			TTL:  cfg.ProfileCacheTTL,
		}),
		Cooldowns: cooldown.NewService(store, cooldowns),
		Rewards:   reward.NewService(store, cooldowns, bus),
		Ledger:    ledger.NewService(store),
		Shop:      shop.NewService(store, catalog, bus),
		Redeem: redeem.NewService(store, redeem.Config{
			StepDuration:   cfg.RedeemStepDuration,
			RefundOnCancel: cfg.RedeemRefundOnCancel,
			SessionTTL:     cfg.RedeemSessionTTL,
		}, bus),
	}, nil
}

// MaintenanceJobs builds the cron jobs and schedules them
func MaintenanceJobs(cfg *config.Config, store *postgres.Store, profiles jobs.ProfileCache, scheduler *jobs.Scheduler) ([]jobs.Job, error) {
	streaks := jobs.NewStreakExpiryJob(store, profiles)
	sweep := jobs.NewSessionSweepJob(store, cfg.RedeemSessionTTL)

	if err := scheduler.Schedule(cfg.StreakExpirySchedule, streaks); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedScheduleJob, err)
	}
	if err := scheduler.Schedule(cfg.SessionSweepSchedule, sweep); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedScheduleJob, err)
	}
	slog.Info(LogMsgJobsScheduled,
		jobs.JobNameStreakExpiry, cfg.StreakExpirySchedule,
		jobs.JobNameSessionSweep, cfg.SessionSweepSchedule)

	return []jobs.Job{streaks, sweep}, nil
}
