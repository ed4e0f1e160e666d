package commands

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// TransitionOrderCommandHandler moves an order along its kind's state machine.
//
// The order row stays locked from read until the transaction ends, and the new
// status is only committed once every required stakeholder has been notified:
//
//	Begin -> GetForUpdate -> Transition -> Update -> required sends -> Commit -> best-effort sends
//
// A failed required send rolls the transaction back, so the stored order keeps its
// previous status.
//
// Example:
//
//	cmd, _ := NewTransitionOrderCommand(order.Delivery, 42, order.Canceled)
//	updated, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrInvalidTransition):
//	case errors.Is(err, notifier.ErrVendorNotificationFailed):
//	}
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   StatusNotifier
}

// NewTransitionOrderCommandHandler creates a handler for status transitions.
func NewTransitionOrderCommandHandler(uowFactory OrderUoWFactory, notifier StatusNotifier) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle applies the transition and returns the committed order.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.Kind(), cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: %s order %d", ErrOrderNotFound, cmd.Kind(), cmd.OrderID())
	}
	if err != nil {
		return nil, err
	}

	if err = o.Transition(cmd.Target()); err != nil {
		return nil, err
	}
	if notes, ok := cmd.Notes(); ok {
		o.SetNotes(notes)
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if _, err = h.notifier.Dispatch(ctx, o, cmd.Target(), uow.Commit); err != nil {
		return nil, err
	}

	return o, nil
}
