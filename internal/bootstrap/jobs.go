package bootstrap

import (
	"log/slog"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/config"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/eventlog"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/scheduler"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/worker"
)

// StartBackgroundJobs starts the worker pool and schedules the event log cleanup
func StartBackgroundJobs(cfg *config.Config, audit eventlog.Service) (*worker.Pool, *scheduler.Scheduler) {
	pool := worker.NewPool(BackgroundWorkers, BackgroundQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.EventLogCleanupInterval, eventlog.NewCleanupJob(audit, cfg.EventLogRetention))

	slog.Info(LogMsgBackgroundJobsStarted,
		"cleanup_interval", cfg.EventLogCleanupInterval.String(),
		"retention", cfg.EventLogRetention.String())
	return pool, sched
}
