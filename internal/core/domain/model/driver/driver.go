package driver

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// ErrDriverIsNotConstructed is returned when a Driver was not created through NewDriver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// Driver is a courier registered in the driver directory.
//
// Invariants:
//   - id and cityID are positive
//   - contact is present, so the driver can always be notified
type Driver struct {
	id      int64
	cityID  int64
	contact kernel.Contact

	isConstructed bool
}

// NewDriver validates and builds a Driver.
//
// Example:
//
//	contact, _ := kernel.NewContact("Sam", "chat:9001", "")
//	d, err := driver.NewDriver(9, 5, contact)
func NewDriver(id, cityID int64, contact kernel.Contact) (*Driver, error) {
	d := &Driver{isConstructed: true}

	if err := errors.Join(
		d.setID(id),
		d.setCityID(cityID),
		d.setContact(contact),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Driver was built through NewDriver.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

func (d *Driver) ID() int64 {
	return d.id
}

func (d *Driver) CityID() int64 {
	return d.cityID
}

func (d *Driver) Contact() kernel.Contact {
	return d.contact
}

// CanServe reports whether the driver works in the order's city.
func (d *Driver) CanServe(o *order.Order) (bool, error) {
	if err := d.Validate(); err != nil {
		return false, err
	}
	if err := o.Validate(); err != nil {
		return false, err
	}
	return d.cityID == o.CityID(), nil
}

func (d *Driver) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}
	d.id = id
	return nil
}

func (d *Driver) setCityID(cityID int64) error {
	if cityID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("cityID", fmt.Errorf("%d is not greater than 0", cityID))
	}
	d.cityID = cityID
	return nil
}

func (d *Driver) setContact(contact kernel.Contact) error {
	if !contact.IsPresent() {
		return errs.NewValueIsRequiredError("driver contact")
	}
	d.contact = contact
	return nil
}
