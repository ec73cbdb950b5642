package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"vetpickup/internal/core/application/usecases/commands"
	"vetpickup/internal/core/application/usecases/queries"
	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/services"
	"vetpickup/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// PendingAssignmentJob retries automatic assignment for today's requests that
// still have no courier, typically because no fixed courier covered the zone
// when they were booked or their courier was deleted since.
type PendingAssignmentJob struct {
	spec            string
	location        *time.Location
	scheduleHandler queries.GetDayScheduleQueryHandler
	assignHandler   commands.AssignCourierCommandHandler
	cron            *cron.Cron
	logger          *slog.Logger
}

// NewPendingAssignmentJob creates the job. spec is a cron expression with a
// seconds field evaluated in location; an empty spec disables the job.
func NewPendingAssignmentJob(
	spec string,
	location *time.Location,
	scheduleHandler queries.GetDayScheduleQueryHandler,
	assignHandler commands.AssignCourierCommandHandler,
	logger *slog.Logger,
) *PendingAssignmentJob {
	return &PendingAssignmentJob{
		spec:            spec,
		location:        location,
		scheduleHandler: scheduleHandler,
		assignHandler:   assignHandler,
		cron:            cron.New(cron.WithSeconds(), cron.WithLocation(location)),
		logger:          logger.With("component", "pending_assignment_job"),
	}
}

// Start schedules the job. It is a no-op when the job is disabled.
func (j *PendingAssignmentJob) Start() error {
	if j.spec == "" {
		j.logger.InfoContext(context.Background(), "Pending assignment job disabled")
		return nil
	}

	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		today := kernel.DateOf(time.Now().In(j.location))

		if _, err := j.Run(ctx, today); err != nil {
			j.logger.ErrorContext(ctx, "Pending assignment job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending assignment job started", "schedule", j.spec)
	return nil
}

// Stop stops the pending assignment job.
func (j *PendingAssignmentJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Pending assignment job stopped")
}

// Run tries to assign every active request of date without a courier and
// returns how many got one. A failure on one request does not stop the others.
func (j *PendingAssignmentJob) Run(ctx context.Context, date kernel.Date) (int, error) {
	query, err := queries.NewGetDayScheduleQuery(date)
	if err != nil {
		return 0, err
	}

	rows, err := j.scheduleHandler.Handle(ctx, query)
	if err != nil {
		return 0, err
	}

	var (
		assigned int
		failures []error
		seen     = make(map[kernel.UUID]struct{}, len(rows))
	)
	for _, row := range rows {
		if row.CourierID != nil {
			continue
		}
		if _, ok := seen[row.ID]; ok {
			continue
		}
		seen[row.ID] = struct{}{}

		cmd, err := commands.NewAssignCourierCommand(row.ID)
		if err != nil {
			failures = append(failures, err)
			continue
		}

		assignment, err := j.assignHandler.Handle(ctx, cmd)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		metrics.AssignmentsTotal.WithLabelValues(assignment.Outcome.String()).Inc()

		if assignment.Outcome == services.Assigned {
			assigned++
			j.logger.InfoContext(ctx, "Request assigned",
				"request_id", row.ID.String(),
				"courier_id", assignment.CourierID.String(),
			)
		}
	}

	return assigned, errors.Join(failures...)
}
