package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command; instances are not shared.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a fulfillment command.
//
// Row locks taken through OrderRepository().GetForUpdate are held until Commit or
// Rollback, which is what serializes concurrent mutations of one order. Callers
// defer Rollback right after Begin; after a successful Commit the deferred
// Rollback reports an error that is ignored.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// DriverRepository reads and registers drivers inside the transaction.
	DriverRepository() DriverRepository

	// OrderRepository reads, locks and writes orders inside the transaction.
	OrderRepository() OrderRepository
}
