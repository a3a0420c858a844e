// Package jobs provides scheduled background tasks for the fleet
// operations service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping that no request triggers.
//
// # Available Jobs
//
// 1. StaleOrderSweepJob - Cancels Created work orders that were never picked
// up within the retention window, on a configurable daily schedule
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(sweepHandler, schedule, staleAfter, logger)
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
// Sweep failures are logged and retried on the next scheduled run; a failed
// run never leaves partially cancelled batches because the sweep commits all
// of its cancellations in one transaction.
package jobs
