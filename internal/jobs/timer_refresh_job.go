package jobs

import (
	"context"
	"log/slog"

	"expeditor/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TimerRefreshJob drives the board clocks. Runs every second to recompute
// the running cooking and delivery timers and feed the log collector.
type TimerRefreshJob struct {
	handler commands.RefreshTimersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTimerRefreshJob creates the per-second tick job.
// A tick that overruns its second is skipped rather than stacked, so a slow
// pass never causes concurrent refreshes.
func NewTimerRefreshJob(handler commands.RefreshTimersCommandHandler, logger *slog.Logger) *TimerRefreshJob {
	jobLogger := logger.With("component", "timer_refresh_job")
	return &TimerRefreshJob{
		handler: handler,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: jobLogger,
	}
}

// Start begins the timer refresh job to run every second.
func (j *TimerRefreshJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRefreshTimersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Timer refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Timer refresh job started (running every second)")
	return nil
}

// Stop stops the timer refresh job.
func (j *TimerRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Timer refresh job stopped")
}
