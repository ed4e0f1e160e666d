package commands

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// AssignDriverCommandHandler puts a driver in charge of an order and requests PICKUP.
//
// The assignment is all-or-nothing on the driver leg: the driver id is only stored
// after the driver was told about the order. The PICKUP transition that follows is a
// separate unit of work; if its vendor notification fails the driver stays recorded
// and the order stays PENDING, and the assignment may be retried with the same driver.
//
// Example:
//
//	cmd, _ := NewAssignDriverCommand(order.Delivery, 1, 9)
//	o, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrDriverCityMismatch):
//	case errors.Is(err, notifier.ErrDriverNotificationFailed):
//	}
type AssignDriverCommandHandler struct {
	uowFactory UoWFactory
	notifier   AssignmentNotifier
	transition OrderTransitioner
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(
	uowFactory UoWFactory,
	notifier AssignmentNotifier,
	transition OrderTransitioner,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		transition: transition,
	}
}

// Handle assigns the driver and returns the order after the PICKUP transition.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.assign(ctx, cmd); err != nil {
		return nil, err
	}

	pickup, err := NewTransitionOrderCommand(cmd.Kind(), cmd.OrderID(), order.Pickup)
	if err != nil {
		return nil, err
	}

	return h.transition.Handle(ctx, pickup)
}

func (h AssignDriverCommandHandler) assign(ctx context.Context, cmd AssignDriverCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()
	orderRepo := uow.OrderRepository()

	d, err := driverRepo.Get(ctx, cmd.DriverID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("%w: %d", ErrDriverNotFound, cmd.DriverID())
	}
	if err != nil {
		return err
	}

	o, err := orderRepo.GetForUpdate(ctx, cmd.Kind(), cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("%w: %s order %d", ErrOrderNotFound, cmd.Kind(), cmd.OrderID())
	}
	if err != nil {
		return err
	}

	dispatcher := services.NewOrderDispatcher()
	if err = dispatcher.CheckEligibility(o, d); err != nil {
		return err
	}

	if err = h.notifier.NotifyDriverAssignment(ctx, o, d); err != nil {
		return err
	}

	if err = dispatcher.Dispatch(o, d); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
