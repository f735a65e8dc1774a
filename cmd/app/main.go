package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/CoinQuest_Go/internal/auth"
	"github.com/osse101/CoinQuest_Go/internal/bootstrap"
	"github.com/osse101/CoinQuest_Go/internal/config"
	"github.com/osse101/CoinQuest_Go/internal/database"
	"github.com/osse101/CoinQuest_Go/internal/database/postgres"
	"github.com/osse101/CoinQuest_Go/internal/jobs"
	"github.com/osse101/CoinQuest_Go/internal/server"
	"github.com/osse101/CoinQuest_Go/internal/sse"
)

// version is stamped at build time with -ldflags "-X main.version=..."
var version = "dev"

// @title CoinQuest API
// @version 1.0
// @description Reward cooldowns, coin ledger, shop and redeem flow.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg, version)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logFile.Close()

	if err := run(cfg); err != nil {
		slog.Error("Fatal error", "error", err)
		logFile.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}

	if cfg.AutoMigrate {
		if err := database.Migrate(ctx, pool, "up"); err != nil {
			pool.Close()
			return err
		}
	}

	verifier, err := auth.NewVerifier(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)
	if err != nil {
		pool.Close()
		return err
	}

	store := postgres.NewStore(pool)
	bus := bootstrap.InitializeEventSystem()

	svcs, err := bootstrap.InitializeServices(cfg, store, bus)
	if err != nil {
		pool.Close()
		return err
	}

	hub := sse.NewHub()
	hub.Start()

	bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:       bus,
		ProfileService: svcs.Profiles,
		Hub:            hub,
	})

	scheduler := jobs.NewScheduler()
	maintenance, err := bootstrap.MaintenanceJobs(cfg, store, svcs.Profiles, scheduler)
	if err != nil {
		hub.Stop()
		pool.Close()
		return err
	}
	scheduler.Start()

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		SSEKeepAlive:   cfg.SSEKeepAlive,
	}, server.Dependencies{
		DB:        store,
		Verifier:  verifier,
		Profiles:  svcs.Profiles,
		Cooldowns: svcs.Cooldowns,
		Rewards:   svcs.Rewards,
		Ledger:    svcs.Ledger,
		Shop:      svcs.Shop,
		Redeem:    svcs.Redeem,
		Hub:       hub,
		JobRunner: scheduler,
		Jobs:      maintenance,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig.String())
	case runErr = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:    srv,
		Scheduler: scheduler,
		Hub:       hub,
		DBPool:    pool,
	})
	return runErr
}
