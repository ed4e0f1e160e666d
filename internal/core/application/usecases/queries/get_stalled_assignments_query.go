package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrGetStalledAssignmentsQueryIsNotConstructed = errors.New(
	"GetStalledAssignmentsQuery must be created via NewGetStalledAssignmentsQuery constructor",
)

// GetStalledAssignmentsQuery finds orders that hold a driver but are still PENDING.
// This happens when the driver was notified but the PICKUP vendor notification failed,
// and the order waits for an operator to retry the assignment.
//
// Example:
//
//	query := NewGetStalledAssignmentsQuery()
//	stalled, err := handler.Handle(ctx, query)
//	for _, s := range stalled {
//	    fmt.Printf("%s order %d waits since %s with driver %d\n", s.Kind, s.OrderID, s.CreatedAt, s.DriverID)
//	}
type GetStalledAssignmentsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetStalledAssignmentsQuery() GetStalledAssignmentsQuery {
	return GetStalledAssignmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStalledAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetStalledAssignmentsQueryIsNotConstructed)
}

// GetStalledAssignmentsQueryResponse is one stalled order.
type GetStalledAssignmentsQueryResponse struct {
	Kind      order.Kind
	OrderID   int64
	CityID    int64
	DriverID  int64
	CreatedAt time.Time
}
