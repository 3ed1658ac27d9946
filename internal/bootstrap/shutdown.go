package bootstrap

import (
	"context"
	"log/slog"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/database"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/scheduler"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/server"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server          *server.Server
	Scheduler       *scheduler.Scheduler
	WorkerPool      *worker.Pool
	TracingShutdown func(context.Context) error
	DBPool          database.Pool
}

// GracefulShutdown stops components in order:
// 1. HTTP server (stop accepting new requests, drain in-flight ones)
// 2. Scheduler and worker pool (cancel running jobs)
// 3. Tracing (flush pending spans)
// 4. Database pool
//
// Nil components are skipped, so a partially started process can be shut
// down with whatever it has. Errors are logged and never stop the sequence.
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
		slog.Info(LogMsgBackgroundJobsStopped)
	}

	if components.TracingShutdown != nil {
		if err := components.TracingShutdown(ctx); err != nil {
			slog.Error(LogMsgTracingFlushFailed, "error", err)
		}
	}

	if components.DBPool != nil {
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
