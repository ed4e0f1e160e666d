package jobs

import (
	"context"
	"time"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// DefaultStalledAssignmentSchedule runs the report at the top of every minute.
const DefaultStalledAssignmentSchedule = "0 * * * * *"

// StalledAssignmentsReader lists orders that hold a driver but never reached PICKUP.
type StalledAssignmentsReader interface {
	Handle(
		ctx context.Context,
		query queries.GetStalledAssignmentsQuery,
	) ([]queries.GetStalledAssignmentsQueryResponse, error)
}

// StalledAssignmentJob periodically reports stalled assignments so an operator can
// retry them. It only reads; retrying is an operator decision.
type StalledAssignmentJob struct {
	reader   StalledAssignmentsReader
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *logrus.Entry
}

// NewStalledAssignmentJob creates the reporter. An empty schedule falls back to
// DefaultStalledAssignmentSchedule; schedules use the six field cron format.
func NewStalledAssignmentJob(reader StalledAssignmentsReader, schedule string, logger *logrus.Logger) *StalledAssignmentJob {
	if schedule == "" {
		schedule = DefaultStalledAssignmentSchedule
	}
	return &StalledAssignmentJob{
		reader:   reader,
		schedule: schedule,
		timeout:  30 * time.Second,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.WithField("component", "stalled_assignment_job"),
	}
}

// Start registers the report with the scheduler and starts it.
func (j *StalledAssignmentJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()

		j.Run(ctx)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.WithField("schedule", j.schedule).Info("stalled assignment job started")
	return nil
}

// Run executes one report and returns the number of stalled orders found.
func (j *StalledAssignmentJob) Run(ctx context.Context) int {
	stalled, err := j.reader.Handle(ctx, queries.NewGetStalledAssignmentsQuery())
	if err != nil {
		j.logger.WithError(err).Error("stalled assignment report failed")
		return 0
	}

	for _, s := range stalled {
		j.logger.WithFields(logrus.Fields{
			"order_id":  s.OrderID,
			"kind":      s.Kind.String(),
			"city_id":   s.CityID,
			"driver_id": s.DriverID,
			"waiting":   time.Since(s.CreatedAt).Round(time.Second).String(),
		}).Warn("order has a driver but no pickup; retry the assignment")
	}

	return len(stalled)
}

// Stop waits for a running report to finish.
func (j *StalledAssignmentJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("stalled assignment job stopped")
}
