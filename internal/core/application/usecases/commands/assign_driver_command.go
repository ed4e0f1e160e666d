package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand requests that a driver be put in charge of an order.
//
// Example:
//
//	cmd, err := NewAssignDriverCommand(order.Delivery, 1, 9)
//	if err != nil {
//	    return fmt.Errorf("invalid assignment: %w", err)
//	}
//	o, err := handler.Handle(ctx, cmd)
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	kind     order.Kind
	orderID  int64
	driverID int64

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand validates the order addressing and the driver id.
func NewAssignDriverCommand(kind order.Kind, orderID, driverID int64) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setKind(kind),
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

func (c AssignDriverCommand) Kind() order.Kind {
	return c.kind
}

func (c AssignDriverCommand) OrderID() int64 {
	return c.orderID
}

func (c AssignDriverCommand) DriverID() int64 {
	return c.driverID
}

func (c *AssignDriverCommand) setKind(kind order.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}

func (c *AssignDriverCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID", fmt.Errorf("%d is not greater than 0", orderID))
	}
	c.orderID = orderID
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID int64) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("driverID", fmt.Errorf("%d is not greater than 0", driverID))
	}
	c.driverID = driverID
	return nil
}
