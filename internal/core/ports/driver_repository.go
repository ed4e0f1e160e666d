package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/driver"
)

// DriverRepository reads the driver directory.
type DriverRepository interface {
	// Add registers a driver. Used by provisioning and tests.
	Add(ctx context.Context, d *driver.Driver) error

	// Get retrieves a driver by id, or an error matching errs.ErrObjectNotFound.
	Get(ctx context.Context, id int64) (*driver.Driver, error)
}
