// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order workflow.
//
// # Available Jobs
//
// 1. CountdownJob - Runs every second to advance the session-local order
// countdowns held by the realtime hub.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the realtime hub as ticker
//	jobManager := jobs.NewJobManager(hub, logger)
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
// The countdown job uses the cron expression "* * * * * *", i.e. every
// second, matching the one-second cadence of the countdown wire protocol.
package jobs
