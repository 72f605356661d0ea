package bootstrap

import (
	"context"
	"log/slog"

	"github.com/dotworks/PixieBot_Go/internal/accrual"
	"github.com/dotworks/PixieBot_Go/internal/event"
	"github.com/dotworks/PixieBot_Go/internal/scheduler"
	"github.com/dotworks/PixieBot_Go/internal/server"
	"github.com/dotworks/PixieBot_Go/internal/worker"
)

// ShutdownComponents holds everything that needs an orderly stop.
type ShutdownComponents struct {
	Server     *server.Server
	Scheduler  *scheduler.Scheduler
	WorkerPool *worker.Pool
	Tracker    *accrual.Tracker
	DeadLetter *event.DeadLetterWriter
}

// GracefulShutdown stops the application in dependency order: the HTTP server
// first so no new work arrives, then the scheduler and worker pool so
// in-flight jobs drain, then the voice tracker, and the dead-letter file
// last. Errors are logged but never abort the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}
	if components.Tracker != nil {
		components.Tracker.Shutdown()
	}

	if components.DeadLetter != nil {
		if err := components.DeadLetter.Close(); err != nil {
			slog.Error("Dead-letter writer close failed", "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
