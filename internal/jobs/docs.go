// Package jobs provides scheduled background tasks for the procurement
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations over the order collection.
//
// # Available Jobs
//
// 1. StaleOrderReportJob - Reports orders stuck in pending status for longer
// than the configured number of days
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(repo, order.Purchase, "0 0 * * * *", 14, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The report job only reads: a failed pass is logged and retried on the next
// tick, never propagated.
package jobs
