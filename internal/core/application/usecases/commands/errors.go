package commands

import "errors"

var (
	// ErrOrderNotFound is returned when no order of the requested kind has the id.
	ErrOrderNotFound = errors.New("order not found")

	// ErrDriverNotFound is returned when the driver directory has no such driver.
	ErrDriverNotFound = errors.New("driver not found")

	// ErrForbiddenTransitionForDriver is returned when the driver channel requests a
	// status only operators may set.
	ErrForbiddenTransitionForDriver = errors.New("transition is not permitted for drivers")
)
