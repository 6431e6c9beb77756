// Package jobs provides scheduled background tasks of the order lifecycle.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. CompletionJob - completes accepted orders whose completion delay has passed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(completeDueOrdersHandler, jobs.CompletionConfig{
//		Schedule:  "* * * * * *",
//		BatchSize: 100,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are cron expressions with a leading seconds field. A run that is
// still in progress when the next one is due causes that next run to be skipped.
//
// # Error Handling
//
// - Orders that left the accepted state before their sweep are logged at debug level
// - Any other failure is logged as an error; the order is retried on the next run
// - Failed job starts will stop any already running jobs
package jobs
