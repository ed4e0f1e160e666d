// Package jobs provides scheduled background tasks for the fulfillment service.
//
// Jobs are built on github.com/robfig/cron/v3 with the seconds field enabled.
//
// # Available Jobs
//
// StalledAssignmentJob lists orders that hold a driver but are still PENDING.
// That state is left behind when the driver was notified and recorded but the
// vendor could not be told about the PICKUP. The job logs each such order at
// WARN so an operator can retry the assignment with the same driver.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(stalledHandler, cfg.StalledAssignmentCron, logger)
//	if err := jobManager.StartAll(); err != nil {
//		logger.WithError(err).Fatal("failed to start jobs")
//	}
//	defer jobManager.StopAll()
package jobs
