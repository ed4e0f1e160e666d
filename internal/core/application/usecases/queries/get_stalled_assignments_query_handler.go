package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetStalledAssignmentsQueryHandler reads stalled assignments across both order tables.
type GetStalledAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetStalledAssignmentsQueryHandler requires a GORM database connection for query execution.
func NewGetStalledAssignmentsQueryHandler(db *gorm.DB) GetStalledAssignmentsQueryHandler {
	return GetStalledAssignmentsQueryHandler{db: db}
}

// Handle returns stalled orders, oldest first.
func (h GetStalledAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetStalledAssignmentsQuery,
) ([]GetStalledAssignmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stalled := make([]GetStalledAssignmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT CAST(? AS integer), id, city_id, driver_id, created_at
		FROM delivery_orders
		WHERE status = ? AND driver_id IS NOT NULL
		UNION ALL
		SELECT CAST(? AS integer), id, city_id, driver_id, created_at
		FROM service_orders
		WHERE status = ? AND driver_id IS NOT NULL
		ORDER BY created_at, id
	`, int(order.Delivery), int(order.Pending), int(order.Service), int(order.Pending)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetStalledAssignmentsQueryResponse
		var kind int

		if err = rows.Scan(
			&kind,
			&resp.OrderID,
			&resp.CityID,
			&resp.DriverID,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		resp.Kind = order.Kind(kind)
		stalled = append(stalled, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stalled, nil
}
