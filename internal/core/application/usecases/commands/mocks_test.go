package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/notifier"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, kind order.Kind, id int64) (*order.Order, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, kind order.Kind, id int64) (*order.Order, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByAccessCode(
	ctx context.Context,
	kind order.Kind,
	code kernel.AccessCode,
) (*order.Order, error) {
	args := m.Called(ctx, kind, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id int64) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

// MockUoW satisfies every unit of work shape the handlers accept.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverUoW)
}

// MockStatusNotifier runs the commit callback unless the stubbed error is non-nil,
// mirroring the real orchestrator's contract.
type MockStatusNotifier struct{ mock.Mock }

func (m *MockStatusNotifier) Dispatch(
	ctx context.Context,
	o *order.Order,
	status order.Status,
	commit notifier.CommitFunc,
) (notifier.DispatchResult, error) {
	args := m.Called(ctx, o, status)
	if err := args.Error(1); err != nil {
		return args.Get(0).(notifier.DispatchResult), err
	}
	if commit != nil {
		if err := commit(ctx); err != nil {
			return args.Get(0).(notifier.DispatchResult), err
		}
	}
	return args.Get(0).(notifier.DispatchResult), nil
}

type MockAssignmentNotifier struct{ mock.Mock }

func (m *MockAssignmentNotifier) NotifyDriverAssignment(ctx context.Context, o *order.Order, d *driver.Driver) error {
	args := m.Called(ctx, o, d)
	return args.Error(0)
}

type MockTransitioner struct{ mock.Mock }

func (m *MockTransitioner) Handle(ctx context.Context, cmd commands.TransitionOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockResolver struct{ mock.Mock }

func (m *MockResolver) Handle(ctx context.Context, query queries.ResolveOrderByCodeQuery) (*order.Order, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

var createdAt = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func mustContact(t *testing.T, name, address, location string) kernel.Contact {
	t.Helper()
	c, err := kernel.NewContact(name, address, location)
	require.NoError(t, err)
	return c
}

func newPendingOrder(t *testing.T, kind order.Kind) *order.Order {
	t.Helper()
	o, err := order.NewOrder(1, kind, 5,
		mustContact(t, "Guest 301", "chat:client", "Grand Hotel, room 301"),
		mustContact(t, "Corner Store", "chat:vendor", "12 Palm Street"),
		createdAt,
	)
	require.NoError(t, err)
	return o
}

func newDriver(t *testing.T, id, cityID int64) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(id, cityID, mustContact(t, "Sam", "chat:driver", ""))
	require.NoError(t, err)
	return d
}

func orderInStatus(t *testing.T, kind order.Kind, path ...order.Status) *order.Order {
	t.Helper()
	o := newPendingOrder(t, kind)
	for _, s := range path {
		if s == order.Pickup {
			d := newDriver(t, 9, 5)
			require.NoError(t, o.AssignDriver(d.ID(), d.Contact()))
		}
		require.NoError(t, o.Transition(s))
	}
	return o
}
