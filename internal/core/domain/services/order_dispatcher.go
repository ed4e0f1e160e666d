package services

import (
	"errors"

	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/order"
)

// ErrDriverCityMismatch is returned when a driver works in a different city than the order.
var ErrDriverCityMismatch = errors.New("driver city does not match order city")

// OrderDispatcher decides whether a driver may be put in charge of an order.
//
// Business rules:
//   - The driver and the order must be in the same city
//   - Only pending orders accept a driver
//   - A driver already on file is never replaced by a different one
//
// Example usage:
//
//	dispatcher := services.NewOrderDispatcher()
//	if err := dispatcher.CheckEligibility(o, d); err != nil {
//	    return err // nothing was changed
//	}
//	// notify the driver, then:
//	if err := dispatcher.Dispatch(o, d); err != nil {
//	    return err
//	}
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// CheckEligibility validates the pair without mutating either side.
//
// Returns:
//   - ErrDriverCityMismatch when the cities differ
//   - order.ErrInvalidTransition when the order is no longer pending
//   - order.ErrDriverAlreadyAssigned when another driver holds the order
func (OrderDispatcher) CheckEligibility(o *order.Order, d *driver.Driver) error {
	sameCity, err := d.CanServe(o)
	if err != nil {
		return err
	}
	if !sameCity {
		return ErrDriverCityMismatch
	}

	return o.ValidateAssignDriver(d.ID())
}

// Dispatch re-checks eligibility and records d on o. Callers invoke it only
// after the driver was successfully told about the order.
func (s OrderDispatcher) Dispatch(o *order.Order, d *driver.Driver) error {
	if err := s.CheckEligibility(o, d); err != nil {
		return err
	}

	return o.AssignDriver(d.ID(), d.Contact())
}
