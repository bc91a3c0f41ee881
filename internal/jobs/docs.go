// Package jobs provides scheduled background tasks for the flower shop.
//
// Jobs are built on github.com/robfig/cron/v3 and managed through JobManager:
//
//	jobManager := jobs.NewJobManager(purgeHandler, "0 3 * * *", 30, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The only job today is PurgeDeletedOrdersJob, which permanently removes
// orders whose soft deletion is older than the configured retention window.
// Failures are logged and retried on the next scheduled run.
package jobs
