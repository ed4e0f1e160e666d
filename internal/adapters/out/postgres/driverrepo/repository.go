package driverrepo

import (
	"context"
	"strconv"

	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/pkg/errs"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GormDriverRepository implements ports.DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new driver to the directory.
func (r *GormDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := fromDomain(d)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errors.Wrapf(err, "insert driver %d", d.ID())
	}

	if r.tracker != nil {
		r.tracker.TrackAggregate("driver:"+strconv.FormatInt(d.ID(), 10), d)
	}
	return nil
}

// Get retrieves a driver by id.
func (r *GormDriverRepository) Get(ctx context.Context, id int64) (*driver.Driver, error) {
	var dto DriverDTO
	if err := r.db.WithContext(ctx).Take(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id)
		}
		return nil, errors.Wrapf(err, "select driver %d", id)
	}

	return toDomain(dto)
}
