package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CoinQuest_Go/internal/jobs"
	"github.com/osse101/CoinQuest_Go/internal/server"
	"github.com/osse101/CoinQuest_Go/internal/sse"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server    *server.Server
	Scheduler *jobs.Scheduler
	Hub       *sse.Hub
	DBPool    *pgxpool.Pool
}

// GracefulShutdown stops components in order:
// 1. HTTP server (stop accepting new requests)
// 2. Job scheduler (wait for a running job to finish)
// 3. SSE hub (close open streams)
// 4. Database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		slog.Info(LogMsgShuttingDownScheduler)
		if err := components.Scheduler.Stop(ctx); err != nil {
			slog.Error(LogMsgSchedulerStopFailed, "error", err)
		}
	}

	if components.Hub != nil {
		slog.Info(LogMsgShuttingDownHub)
		components.Hub.Stop()
	}

	if components.DBPool != nil {
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
