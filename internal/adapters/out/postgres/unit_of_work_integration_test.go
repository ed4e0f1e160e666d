package postgres_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	postgres_adapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var nextID atomic.Int64

// UnitOfWorkIntegrationTestSuite tests the GORM-based Unit of Work against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE delivery_orders, service_orders, drivers").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.DriverRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsAssignment() {
	ctx := context.Background()
	d := suite.createDriver()
	o := suite.createOrder(order.Delivery)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	loadedDriver, err := uow.DriverRepository().Get(ctx, d.ID())
	suite.Require().NoError(err)
	locked, err := uow.OrderRepository().GetForUpdate(ctx, order.Delivery, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(locked.AssignDriver(loadedDriver.ID(), loadedDriver.Contact()))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, locked))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().OrderRepository().Get(ctx, order.Delivery, o.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(restored.DriverID())
	suite.Equal(d.ID(), *restored.DriverID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackRestoresPreviousStatus() {
	ctx := context.Background()
	o := suite.createOrder(order.Service)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	locked, err := uow.OrderRepository().GetForUpdate(ctx, order.Service, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(locked.Transition(order.Canceled))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, locked))
	suite.Require().NoError(uow.Rollback(ctx))

	restored, err := suite.factory.Create().OrderRepository().Get(ctx, order.Service, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, restored.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AggregateTracking() {
	ctx := context.Background()
	o := suite.newOrder(order.Delivery)
	d := suite.newDriver()

	uow, ok := suite.factory.Create().(*postgres_adapter.GormUnitOfWork)
	suite.Require().True(ok)
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.DriverRepository().Add(ctx, d))
	suite.Require().NoError(uow.Commit(ctx))

	tracked := uow.TrackedAggregates()
	suite.Require().Len(tracked, 2)
	suite.Same(o, tracked[0].Aggregate)
	suite.Same(d, tracked[1].Aggregate)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Empty(uow.TrackedAggregates(), "Begin starts a fresh list")
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	order1 := suite.newOrder(order.Delivery)
	order2 := suite.newOrder(order.Delivery)

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))
	suite.Require().NoError(uow1.OrderRepository().Add(ctx, order1))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, order2))

	_, err := uow1.OrderRepository().Get(ctx, order.Delivery, order2.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "UOW1 should not see order2")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	reader := suite.factory.Create().OrderRepository()
	_, err = reader.Get(ctx, order.Delivery, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")
	_, err = reader.Get(ctx, order.Delivery, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) createOrder(kind order.Kind) *order.Order {
	o := suite.newOrder(kind)
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(context.Background(), o))
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) createDriver() *driver.Driver {
	d := suite.newDriver()
	suite.Require().NoError(suite.factory.Create().DriverRepository().Add(context.Background(), d))
	return d
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(kind order.Kind) *order.Order {
	o, err := order.NewOrder(nextID.Add(1), kind, 5, suite.fakeContact(), suite.fakeContact(), time.Now())
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) newDriver() *driver.Driver {
	d, err := driver.NewDriver(nextID.Add(1), 5, suite.fakeContact())
	suite.Require().NoError(err)
	return d
}

func (suite *UnitOfWorkIntegrationTestSuite) fakeContact() kernel.Contact {
	c, err := kernel.NewContact(gofakeit.Name(), "chat:"+gofakeit.Numerify("#########"), gofakeit.Street())
	suite.Require().NoError(err)
	return c
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
