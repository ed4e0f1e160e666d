package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand requests that an order be moved to a new status.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(order.Delivery, 42, order.OnWay)
//	if err != nil {
//	    return err
//	}
//	updated, err := handler.Handle(ctx, cmd.WithNotes("left at reception"))
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	kind    order.Kind
	orderID int64
	target  order.Status

	notes    string
	hasNotes bool

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand validates the addressing and the target status.
// Whether the transition is legal is decided by the handler against the stored order.
func NewTransitionOrderCommand(kind order.Kind, orderID int64, target order.Status) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setKind(kind),
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return cmd, nil
}

// WithNotes returns a copy of the command that also replaces the order notes.
func (c TransitionOrderCommand) WithNotes(notes string) TransitionOrderCommand {
	c.notes = notes
	c.hasNotes = true
	return c
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

func (c TransitionOrderCommand) Kind() order.Kind {
	return c.kind
}

func (c TransitionOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

// Notes returns the replacement notes and whether any were given.
func (c TransitionOrderCommand) Notes() (string, bool) {
	return c.notes, c.hasNotes
}

func (c *TransitionOrderCommand) setKind(kind order.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}

func (c *TransitionOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID", fmt.Errorf("%d is not greater than 0", orderID))
	}
	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
