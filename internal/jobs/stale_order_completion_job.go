package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordertracking/internal/core/application/usecases/commands"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robfig/cron/v3"
)

// DefaultStaleCompletionSchedule runs the sweep every thirty minutes.
const DefaultStaleCompletionSchedule = "0 */30 * * * *"

var staleOrdersCompleted = promauto.NewCounter(prometheus.CounterOpts{
	Name: "ordertracking_stale_orders_completed_total",
	Help: "Number of shipped orders auto-completed by the stale order sweep.",
})

// StaleOrderCompletionJob periodically marks shipped orders as delivered when
// their last update is older than the staleness window.
type StaleOrderCompletionJob struct {
	handler   commands.CompleteStaleOrdersCommandHandler
	schedule  string
	staleness time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleOrderCompletionJob creates the sweep job with the given six-field
// cron schedule and staleness window.
func NewStaleOrderCompletionJob(
	handler commands.CompleteStaleOrdersCommandHandler,
	schedule string,
	staleness time.Duration,
	logger *slog.Logger,
) *StaleOrderCompletionJob {
	return &StaleOrderCompletionJob{
		handler:   handler,
		schedule:  schedule,
		staleness: staleness,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stale_order_completion_job"),
	}
}

// Start schedules the sweep. Each tick computes its own threshold from the
// current time so a long-running process keeps sweeping correctly.
func (j *StaleOrderCompletionJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewCompleteStaleOrdersCommand(time.Now().UTC(), j.staleness)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order completion job misconfigured", "error", err)
			return
		}

		completed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order completion job failed", "error", err)
			return
		}

		staleOrdersCompleted.Add(float64(completed))
		if completed > 0 {
			j.logger.InfoContext(ctx, "Auto-completed stale shipped orders", "count", completed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order completion job started", "schedule", j.schedule)
	return nil
}

// Stop stops the sweep job.
func (j *StaleOrderCompletionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order completion job stopped")
}
