package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand records a newly placed order so it can be fulfilled.
// The placement flow owns ids and contacts; this command only persists them.
//
// Example:
//
//	client, _ := kernel.NewContact("Guest 301", "chat:555", "Grand Hotel, room 301")
//	vendor, _ := kernel.NewContact("Corner Store", "chat:777", "12 Palm Street")
//	cmd, err := NewCreateOrderCommand(order.Delivery, 1, 5, client, vendor)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	kind    order.Kind
	orderID int64
	cityID  int64
	client  kernel.Contact
	vendor  kernel.Contact

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the order data. The vendor contact may be the
// zero Contact when the vendor has no messaging address on file.
func NewCreateOrderCommand(
	kind order.Kind,
	orderID int64,
	cityID int64,
	client kernel.Contact,
	vendor kernel.Contact,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		vendor: vendor,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setKind(kind),
		cmd.setOrderID(orderID),
		cmd.setCityID(cityID),
		cmd.setClient(client),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Kind() order.Kind {
	return c.kind
}

func (c CreateOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c CreateOrderCommand) CityID() int64 {
	return c.cityID
}

func (c CreateOrderCommand) Client() kernel.Contact {
	return c.client
}

func (c CreateOrderCommand) Vendor() kernel.Contact {
	return c.vendor
}

func (c *CreateOrderCommand) setKind(kind order.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}

func (c *CreateOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID", fmt.Errorf("%d is not greater than 0", orderID))
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCityID(cityID int64) error {
	if cityID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("cityID", fmt.Errorf("%d is not greater than 0", cityID))
	}
	c.cityID = cityID
	return nil
}

func (c *CreateOrderCommand) setClient(client kernel.Contact) error {
	if !client.IsPresent() {
		return errs.NewValueIsRequiredError("client contact")
	}
	c.client = client
	return nil
}
