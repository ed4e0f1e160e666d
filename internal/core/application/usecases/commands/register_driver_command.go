package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

// RegisterDriverCommand adds a courier to the driver directory.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	driverID int64
	cityID   int64
	contact  kernel.Contact

	guard guard.ConstructorGuard
}

func NewRegisterDriverCommand(driverID, cityID int64, contact kernel.Contact) (RegisterDriverCommand, error) {
	cmd := RegisterDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setCityID(cityID),
		cmd.setContact(contact),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return cmd, nil
}

func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

func (c RegisterDriverCommand) DriverID() int64 {
	return c.driverID
}

func (c RegisterDriverCommand) CityID() int64 {
	return c.cityID
}

func (c RegisterDriverCommand) Contact() kernel.Contact {
	return c.contact
}

func (c *RegisterDriverCommand) setDriverID(driverID int64) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("driverID", fmt.Errorf("%d is not greater than 0", driverID))
	}
	c.driverID = driverID
	return nil
}

func (c *RegisterDriverCommand) setCityID(cityID int64) error {
	if cityID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("cityID", fmt.Errorf("%d is not greater than 0", cityID))
	}
	c.cityID = cityID
	return nil
}

func (c *RegisterDriverCommand) setContact(contact kernel.Contact) error {
	if !contact.IsPresent() {
		return errs.NewValueIsRequiredError("driver contact")
	}
	c.contact = contact
	return nil
}
