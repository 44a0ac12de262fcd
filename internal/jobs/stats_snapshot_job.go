// Package jobs provides scheduled background tasks for the warehouse service.
// Jobs are observers built on github.com/robfig/cron/v3: they read through the
// query side and never mutate process state.
package jobs

import (
	"context"
	"log/slog"

	"warehouse/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StatsSnapshotJob periodically logs the dashboard counters so operators can
// follow warehouse load from the logs without polling the stats endpoint.
type StatsSnapshotJob struct {
	handler queries.GetStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStatsSnapshotJob creates a job that snapshots the counters every minute.
func NewStatsSnapshotJob(handler queries.GetStatsQueryHandler, logger *slog.Logger) *StatsSnapshotJob {
	return &StatsSnapshotJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "stats_snapshot_job"),
	}
}

// Start schedules the snapshot to run at the top of every minute.
func (j *StatsSnapshotJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		stats, err := j.handler.Handle(ctx, queries.NewGetStatsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Stats snapshot job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Warehouse stats snapshot",
			"totalProducts", stats.TotalProducts,
			"inTransit", stats.InTransit,
			"delivered", stats.Delivered,
			"activeProcesses", stats.ActiveProcesses,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stats snapshot job started (running every minute)")
	return nil
}

// Stop stops the snapshot job.
func (j *StatsSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stats snapshot job stopped")
}
