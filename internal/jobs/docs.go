// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order lifecycle housekeeping.
//
// # Available Jobs
//
// 1. OrderExpiryJob - Runs every minute to cancel orders stuck in pending
// approval past the configured age and return their reserved stock.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireStaleOrdersHandler, 24*time.Hour, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A run that finds no stale orders is a no-op, not an error. Failures are
// logged and retried on the next tick; each run computes its cutoff from the
// current clock, so a missed run self-heals.
package jobs
