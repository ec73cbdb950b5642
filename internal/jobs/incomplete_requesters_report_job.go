package jobs

import (
	"context"
	"log/slog"
	"time"

	"vetpickup/internal/core/application/usecases/commands"
	"vetpickup/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// IncompleteRequestersReportJob periodically logs the requesters whose email
// or address is unknown and publishes their number as a gauge.
type IncompleteRequestersReportJob struct {
	spec    string
	handler commands.ReportIncompleteRequestersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewIncompleteRequestersReportJob creates the job. An empty spec disables it.
func NewIncompleteRequestersReportJob(
	spec string,
	location *time.Location,
	handler commands.ReportIncompleteRequestersCommandHandler,
	logger *slog.Logger,
) *IncompleteRequestersReportJob {
	return &IncompleteRequestersReportJob{
		spec:    spec,
		handler: handler,
		cron:    cron.New(cron.WithSeconds(), cron.WithLocation(location)),
		logger:  logger.With("component", "incomplete_requesters_report_job"),
	}
}

// Start schedules the report. It is a no-op when the job is disabled.
func (j *IncompleteRequestersReportJob) Start() error {
	if j.spec == "" {
		j.logger.InfoContext(context.Background(), "Incomplete requesters report job disabled")
		return nil
	}

	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()

		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Incomplete requesters report job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Incomplete requesters report job started", "schedule", j.spec)
	return nil
}

// Stop stops the report job.
func (j *IncompleteRequestersReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Incomplete requesters report job stopped")
}

// Run sends one report and returns the number of requesters in it.
func (j *IncompleteRequestersReportJob) Run(ctx context.Context) (int, error) {
	reported, err := j.handler.Handle(ctx, commands.NewReportIncompleteRequestersCommand())
	if err != nil {
		return 0, err
	}

	metrics.IncompleteRequesters.Set(float64(reported))
	return reported, nil
}
