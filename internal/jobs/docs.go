// Package jobs provides scheduled background tasks for the order tracking
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the back office relies on.
//
// # Available Jobs
//
// 1. StuckOrderJob - Runs hourly to flag orders that have not progressed
// past a non-terminal status within the configured threshold.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(stuckOrdersHandler, auditLog, threshold, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Scan failures and audit append failures are logged and swallowed; the job
// reports state, it never mutates orders.
package jobs
