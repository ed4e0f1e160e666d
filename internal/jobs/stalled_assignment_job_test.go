package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/jobs"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStalledReader struct{ mock.Mock }

func (m *MockStalledReader) Handle(
	ctx context.Context,
	query queries.GetStalledAssignmentsQuery,
) ([]queries.GetStalledAssignmentsQueryResponse, error) {
	args := m.Called(ctx, query)
	stalled, _ := args.Get(0).([]queries.GetStalledAssignmentsQueryResponse)
	return stalled, args.Error(1)
}

func TestStalledAssignmentJob_Run_LogsEachStalledOrder(t *testing.T) {
	ctx := t.Context()
	logger, hook := test.NewNullLogger()
	reader := new(MockStalledReader)
	reader.On("Handle", ctx, mock.MatchedBy(func(q queries.GetStalledAssignmentsQuery) bool {
		return q.Validate() == nil
	})).Return([]queries.GetStalledAssignmentsQueryResponse{
		{Kind: order.Delivery, OrderID: 1, CityID: 5, DriverID: 9, CreatedAt: time.Now().Add(-time.Hour)},
		{Kind: order.Service, OrderID: 2, CityID: 5, DriverID: 10, CreatedAt: time.Now().Add(-time.Minute)},
	}, nil).Once()

	job := jobs.NewStalledAssignmentJob(reader, "", logger)

	require.Equal(t, 2, job.Run(ctx))

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, logrus.WarnLevel, entries[0].Level)
	assert.Equal(t, int64(1), entries[0].Data["order_id"])
	assert.Equal(t, "delivery", entries[0].Data["kind"])
	assert.Equal(t, "stalled_assignment_job", entries[0].Data["component"])
	assert.Equal(t, "service", entries[1].Data["kind"])
	reader.AssertExpectations(t)
}

func TestStalledAssignmentJob_Run_NothingStalled(t *testing.T) {
	ctx := t.Context()
	logger, hook := test.NewNullLogger()
	reader := new(MockStalledReader)
	reader.On("Handle", ctx, mock.Anything).Return([]queries.GetStalledAssignmentsQueryResponse{}, nil).Once()

	job := jobs.NewStalledAssignmentJob(reader, "", logger)

	assert.Zero(t, job.Run(ctx))
	assert.Empty(t, hook.AllEntries())
}

func TestStalledAssignmentJob_Run_QueryError(t *testing.T) {
	ctx := t.Context()
	logger, hook := test.NewNullLogger()
	reader := new(MockStalledReader)
	reader.On("Handle", ctx, mock.Anything).Return(nil, errors.New("connection refused")).Once()

	job := jobs.NewStalledAssignmentJob(reader, "", logger)

	assert.Zero(t, job.Run(ctx))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestStalledAssignmentJob_Start_InvalidSchedule(t *testing.T) {
	logger, _ := test.NewNullLogger()

	job := jobs.NewStalledAssignmentJob(new(MockStalledReader), "every minute", logger)

	require.Error(t, job.Start())
}

func TestJobManager_StartAndStop(t *testing.T) {
	logger, hook := test.NewNullLogger()

	manager := jobs.NewJobManager(new(MockStalledReader), "0 0 0 1 1 *", logger)

	require.NoError(t, manager.StartAll())
	manager.StopAll()

	assert.Equal(t, "stalled assignment job stopped", hook.LastEntry().Message)
}
