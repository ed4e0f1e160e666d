// Package commands contains business operations that modify order state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/application/notifier"
	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DriverRepoFactory provides access to the driver directory within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DriverUoW manages transactions for driver directory operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// UoW manages transactions that read drivers and modify orders.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   d, err := uow.DriverRepository().Get(ctx, driverID)
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, kind, orderID)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		DriverRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

// Collaborators the handlers delegate to.
type (
	// StatusNotifier fans a status change out to stakeholders around the commit.
	StatusNotifier interface {
		Dispatch(
			ctx context.Context,
			o *order.Order,
			status order.Status,
			commit notifier.CommitFunc,
		) (notifier.DispatchResult, error)
	}

	// AssignmentNotifier tells a driver about a new order.
	AssignmentNotifier interface {
		NotifyDriverAssignment(ctx context.Context, o *order.Order, d *driver.Driver) error
	}

	// OrderTransitioner applies a status change. Implemented by TransitionOrderCommandHandler.
	OrderTransitioner interface {
		Handle(ctx context.Context, cmd TransitionOrderCommand) (*order.Order, error)
	}
)
