// Package jobs provides scheduled background tasks for the expediting system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operations the boards depend on.
//
// # Available Jobs
//
// 1. TimerRefreshJob - Runs every second to recompute the running cooking and
// delivery timers of every order and to collect newly finished items into the
// cooking log.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(refreshTimersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The tick uses the cron expression "* * * * * *" which means it runs every
// second. A tick that is still running when the next fires is skipped, so a
// slow pass over a large board never overlaps itself.
//
// # Error Handling
//
// Tick failures are logged and the next tick proceeds normally; derived
// timers are recomputed from absolute timestamps, so a missed second never
// corrupts state.
package jobs
