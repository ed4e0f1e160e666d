package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"
)

// OrderResolver finds the order an access code unlocks.
type OrderResolver interface {
	Handle(ctx context.Context, query queries.ResolveOrderByCodeQuery) (*order.Order, error)
}

// UpdateOrderViaCodeCommandHandler applies a driver's status update.
//
// Drivers may only move an order forward into the kind's in-transit status or
// COMPLETED; anything else is ErrForbiddenTransitionForDriver. Legal targets are
// delegated to the regular transition flow, so edges and notifications are the
// same as for operator requests.
type UpdateOrderViaCodeCommandHandler struct {
	resolver   OrderResolver
	transition OrderTransitioner
}

func NewUpdateOrderViaCodeCommandHandler(
	resolver OrderResolver,
	transition OrderTransitioner,
) UpdateOrderViaCodeCommandHandler {
	return UpdateOrderViaCodeCommandHandler{
		resolver:   resolver,
		transition: transition,
	}
}

// Handle returns queries.ErrInvalidOrExpiredCode for unknown and expired codes alike.
func (h UpdateOrderViaCodeCommandHandler) Handle(ctx context.Context, cmd UpdateOrderViaCodeCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	query, err := queries.NewResolveOrderByCodeQuery(cmd.Kind(), cmd.Code())
	if err != nil {
		return nil, err
	}

	o, err := h.resolver.Handle(ctx, query)
	if err != nil {
		return nil, err
	}

	if !o.Policy().DriverMayRequest(cmd.Target()) {
		return nil, fmt.Errorf("%w: %s", ErrForbiddenTransitionForDriver, cmd.Target())
	}

	transition, err := NewTransitionOrderCommand(o.Kind(), o.ID(), cmd.Target())
	if err != nil {
		return nil, err
	}
	if cmd.Notes() != "" {
		transition = transition.WithNotes(cmd.Notes())
	}

	return h.transition.Handle(ctx, transition)
}
