// Package ports defines the contracts between the fulfillment core and infrastructure:
// persistence of orders and drivers, transaction control, and outbound messaging.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Delivery and service orders live in separate stores, so every lookup names the kind.
//
// Lookups return an error matching errs.ErrObjectNotFound when nothing matches.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, driver, driver contact and notes of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order without locking it.
	Get(ctx context.Context, kind order.Kind, id int64) (*order.Order, error)

	// GetForUpdate retrieves an order and holds a row lock on it until the
	// surrounding transaction ends. Concurrent transitions of the same order
	// are serialized through this lock.
	GetForUpdate(ctx context.Context, kind order.Kind, id int64) (*order.Order, error)

	// GetByAccessCode retrieves the order of kind whose driver access code is code.
	// Expiry is not checked here; callers compare CreatedAt with their clock.
	GetByAccessCode(ctx context.Context, kind order.Kind, code kernel.AccessCode) (*order.Order, error)
}
