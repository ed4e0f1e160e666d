package cmd

import (
	"time"

	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/application/notifier"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gateway    ports.NotificationGateway
	logger     *logrus.Logger
	now        func() time.Time
}

func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	gateway ports.NotificationGateway,
	logger *logrus.Logger,
) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gateway:    gateway,
		logger:     logger,
		now:        time.Now,
	}
}

func (c *CompositionRoot) CreateOrchestrator() *notifier.Orchestrator {
	return notifier.NewOrchestrator(
		c.gateway,
		services.NewMessageComposer(c.cfg.DriverPortalURL),
		c.cfg.NotificationSendTimeout,
		c.logger,
	)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f, c.CreateOrchestrator())
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f, c.CreateOrchestrator(), c.CreateTransitionOrderCommandHandler())
}

func (c *CompositionRoot) CreateUpdateOrderViaCodeCommandHandler() commands.UpdateOrderViaCodeCommandHandler {
	return commands.NewUpdateOrderViaCodeCommandHandler(
		c.CreateResolveOrderByCodeQueryHandler(),
		c.CreateTransitionOrderCommandHandler(),
	)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.now)
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterDriverCommandHandler(f)
}

// CreateResolveOrderByCodeQueryHandler reads outside any transaction; the
// transition that may follow re-reads the order under a row lock.
func (c *CompositionRoot) CreateResolveOrderByCodeQueryHandler() queries.ResolveOrderByCodeQueryHandler {
	return queries.NewResolveOrderByCodeQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB, nil), c.now)
}

func (c *CompositionRoot) CreateGetCityDriversQueryHandler() queries.GetCityDriversQueryHandler {
	return queries.NewGetCityDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStalledAssignmentsQueryHandler() queries.GetStalledAssignmentsQueryHandler {
	return queries.NewGetStalledAssignmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		Transition:         c.CreateTransitionOrderCommandHandler(),
		AssignDriver:       c.CreateAssignDriverCommandHandler(),
		UpdateViaCode:      c.CreateUpdateOrderViaCodeCommandHandler(),
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		RegisterDriver:     c.CreateRegisterDriverCommandHandler(),
		ResolveByCode:      c.CreateResolveOrderByCodeQueryHandler(),
		CityDrivers:        c.CreateGetCityDriversQueryHandler(),
		StalledAssignments: c.CreateGetStalledAssignmentsQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetStalledAssignmentsQueryHandler(), c.cfg.StalledAssignmentCron, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
