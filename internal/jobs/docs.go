// Package jobs provides scheduled background tasks for the order tracking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the tracking service.
//
// # Available Jobs
//
// 1. StaleOrderCompletionJob - Periodically marks shipped orders as delivered
// when they have seen no update for the configured staleness window.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(completeStaleOrdersHandler, schedule, staleness, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use six-field cron expressions (seconds included). The default
// stale-completion schedule is "0 */30 * * * *", every thirty minutes.
//
// # Error Handling
//
// A failed sweep is logged and retried on the next tick; per-order failures
// inside a sweep are isolated by the command handler and never abort the run.
package jobs
