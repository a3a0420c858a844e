package jobs

import (
	"context"
	"log/slog"
	"time"

	"fleetops/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderSweepJob cancels work orders that were created but never picked
// up within the retention window. Runs on a cron schedule, once per day in
// the default configuration.
type StaleOrderSweepJob struct {
	handler    commands.SweepStaleWorkOrdersCommandHandler
	schedule   string
	staleAfter time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewStaleOrderSweepJob creates the sweep job. The schedule is a standard
// five-field cron expression; staleAfter is how long a Created order may
// wait before the sweep cancels it.
func NewStaleOrderSweepJob(
	handler commands.SweepStaleWorkOrdersCommandHandler,
	schedule string,
	staleAfter time.Duration,
	logger *slog.Logger,
) *StaleOrderSweepJob {
	return &StaleOrderSweepJob{
		handler:    handler,
		schedule:   schedule,
		staleAfter: staleAfter,
		cron:       cron.New(),
		logger:     logger.With("component", "stale_order_sweep_job"),
	}
}

// Start schedules the sweep.
func (j *StaleOrderSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.runOnce)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order sweep job started",
		"schedule", j.schedule, "stale_after", j.staleAfter.String())
	return nil
}

// Stop stops the sweep job.
func (j *StaleOrderSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order sweep job stopped")
}

func (j *StaleOrderSweepJob) runOnce() {
	ctx := context.Background()
	cutoff := time.Now().Add(-j.staleAfter)

	cmd, err := commands.NewSweepStaleWorkOrdersCommand(cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order sweep misconfigured", "error", err)
		return
	}

	if err := j.handler.Handle(ctx, cmd); err != nil {
		j.logger.ErrorContext(ctx, "Stale order sweep failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Stale order sweep completed", "cutoff", cutoff)
}
