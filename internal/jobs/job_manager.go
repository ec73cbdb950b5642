package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"vetpickup/internal/core/application/usecases/commands"
	"vetpickup/internal/core/application/usecases/queries"
)

// Schedules holds the cron specs of the jobs. An empty spec disables a job.
type Schedules struct {
	PendingAssignment string
	IncompleteReport  string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingAssignmentJob *PendingAssignmentJob
	incompleteReportJob  *IncompleteRequestersReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes use case handlers as dependencies to wire up the job execution.
func NewJobManager(
	schedules Schedules,
	location *time.Location,
	dayScheduleHandler queries.GetDayScheduleQueryHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	reportHandler commands.ReportIncompleteRequestersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingAssignmentJob: NewPendingAssignmentJob(
			schedules.PendingAssignment, location, dayScheduleHandler, assignCourierHandler, logger,
		),
		incompleteReportJob: NewIncompleteRequestersReportJob(
			schedules.IncompleteReport, location, reportHandler, logger,
		),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending assignment job: %w", err)
	}

	if err := jm.incompleteReportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.pendingAssignmentJob.Stop()
		return fmt.Errorf("failed to start incomplete requesters report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.incompleteReportJob.Stop()
	jm.pendingAssignmentJob.Stop()
}
