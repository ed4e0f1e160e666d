package jobs

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// JobManager owns the background jobs of the service so main can start and stop
// them as a group.
type JobManager struct {
	stalledAssignmentJob *StalledAssignmentJob
}

// NewJobManager wires the jobs to their readers. stalledSchedule may be empty.
func NewJobManager(
	stalledReader StalledAssignmentsReader,
	stalledSchedule string,
	logger *logrus.Logger,
) *JobManager {
	return &JobManager{
		stalledAssignmentJob: NewStalledAssignmentJob(stalledReader, stalledSchedule, logger),
	}
}

func (jm *JobManager) StartAll() error {
	if err := jm.stalledAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start stalled assignment job: %w", err)
	}
	return nil
}

// StopAll blocks until running jobs return.
func (jm *JobManager) StopAll() {
	jm.stalledAssignmentJob.Stop()
}
