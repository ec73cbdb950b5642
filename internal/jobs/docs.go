// Package jobs provides scheduled background tasks for the pickup service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Specs carry a seconds field and are evaluated in the service time zone.
//
// # Available Jobs
//
// 1. PendingAssignmentJob - Retries automatic assignment for today's requests without a courier
// 2. IncompleteRequestersReportJob - Logs requesters with unknown email or address
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(jobs.Schedules{
//		PendingAssignment: "0 */15 8-18 * * *",
//		IncompleteReport:  "0 0 9 * * MON-FRI",
//	}, location, dayScheduleHandler, assignCourierHandler, reportHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - An empty schedule disables the job; Start and Stop still succeed
// - The assignment job keeps going when one request fails and logs the joined errors
// - Failed job starts will stop any already running jobs
package jobs
