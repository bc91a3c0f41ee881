package jobs

import (
	"context"
	"log/slog"

	"flowershop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PurgeDeletedOrdersJob periodically removes orders whose soft deletion is
// older than the retention window. Soft-deleted rows stay around for
// auditing until the window runs out; this job is the only writer that
// touches them.
type PurgeDeletedOrdersJob struct {
	handler       commands.PurgeDeletedOrdersCommandHandler
	schedule      string
	retentionDays int
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewPurgeDeletedOrdersJob creates a job that purges old soft-deleted orders
// on the given cron schedule.
func NewPurgeDeletedOrdersJob(
	handler commands.PurgeDeletedOrdersCommandHandler,
	schedule string,
	retentionDays int,
	logger *slog.Logger,
) *PurgeDeletedOrdersJob {
	return &PurgeDeletedOrdersJob{
		handler:       handler,
		schedule:      schedule,
		retentionDays: retentionDays,
		cron:          cron.New(),
		logger:        logger.With("component", "purge_deleted_orders_job"),
	}
}

// Start schedules the purge job. Returns an error when the cron expression
// or the retention window is invalid, so misconfiguration fails at startup
// instead of silently never purging.
func (j *PurgeDeletedOrdersJob) Start() error {
	cmd, err := commands.NewPurgeDeletedOrdersCommand(j.retentionDays)
	if err != nil {
		return err
	}

	_, err = j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		purged, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Purge of soft-deleted orders failed", "error", handleErr)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Purged soft-deleted orders", "count", purged)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Purge job started",
		"schedule", j.schedule, "retentionDays", j.retentionDays)
	return nil
}

// Stop stops the purge job.
func (j *PurgeDeletedOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Purge job stopped")
}
