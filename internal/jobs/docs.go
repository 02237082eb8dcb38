// Package jobs provides scheduled background tasks for the retail store.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping the order engine needs.
//
// # Available Jobs
//
// 1. StaleCollectionsJob - Runs hourly to cancel collection orders that
// were never picked up, returning their quantities to stock.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(staleCollectionsHandler, cancelOrderHandler, staleAfterDays, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed cancellation is logged and skipped; the order stays on record
// and the next run picks it up again.
package jobs
