package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"ordertracking/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleOrderCompletionJob *StaleOrderCompletionJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	completeStaleOrdersHandler commands.CompleteStaleOrdersCommandHandler,
	schedule string,
	staleness time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleOrderCompletionJob: NewStaleOrderCompletionJob(completeStaleOrdersHandler, schedule, staleness, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleOrderCompletionJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale order completion job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleOrderCompletionJob.Stop()
}
