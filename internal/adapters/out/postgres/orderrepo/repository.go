package orderrepo

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
// tracker may be nil for read-only use outside a unit of work.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to its kind's table.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	table, err := tableFor(aggregate.Kind())
	if err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err = r.db.WithContext(ctx).Table(table).Create(&dto).Error; err != nil {
		return errors.Wrapf(err, "insert %s order %d", aggregate.Kind(), aggregate.ID())
	}

	r.track(aggregate)
	return nil
}

// Update writes the mutable columns of an existing order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	table, err := tableFor(aggregate.Kind())
	if err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Table(table).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":          dto.Status,
		"driver_id":       dto.DriverID,
		"driver_name":     dto.Driver.Name,
		"driver_address":  dto.Driver.Address,
		"driver_location": dto.Driver.Location,
		"notes":           dto.Notes,
	})
	if result.Error != nil {
		return errors.Wrapf(result.Error, "update %s order %d", aggregate.Kind(), aggregate.ID())
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", orderKey(aggregate.Kind(), aggregate.ID()))
	}

	r.track(aggregate)
	return nil
}

// Get retrieves an order by kind and id.
func (r *GormOrderRepository) Get(ctx context.Context, kind order.Kind, id int64) (*order.Order, error) {
	return r.first(r.db.WithContext(ctx), kind, "id = ?", id)
}

// GetForUpdate retrieves an order with SELECT ... FOR UPDATE. Outside a
// transaction the lock is released as soon as the statement completes.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, kind order.Kind, id int64) (*order.Order, error) {
	db := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	return r.first(db, kind, "id = ?", id)
}

// GetByAccessCode retrieves an order by its driver access code.
func (r *GormOrderRepository) GetByAccessCode(
	ctx context.Context,
	kind order.Kind,
	code kernel.AccessCode,
) (*order.Order, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}
	return r.first(r.db.WithContext(ctx), kind, "access_code = ?", code.UUID())
}

func (r *GormOrderRepository) first(db *gorm.DB, kind order.Kind, query string, arg any) (*order.Order, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	var dto OrderColumns
	if err = db.Table(table).Where(query, arg).Take(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", fmt.Sprintf("%s %v", kind, arg))
		}
		return nil, errors.Wrapf(err, "select %s order", kind)
	}

	return toDomain(kind, dto)
}

func (r *GormOrderRepository) track(aggregate *order.Order) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(orderKey(aggregate.Kind(), aggregate.ID()), aggregate)
	}
}

func orderKey(kind order.Kind, id int64) string {
	return fmt.Sprintf("%s_order:%d", kind, id)
}
