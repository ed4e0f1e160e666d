package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status is the lifecycle state of an order. Which statuses are reachable, and
// from where, is decided by the order's KindPolicy.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status; the order waits for a driver.
	Pending

	// Pickup means a driver was notified and the fulfiller was told to hand over.
	Pickup

	// OnWay is the in-transit status of delivery orders.
	OnWay

	// InProgress is the in-transit status of service orders.
	InProgress

	// Completed is terminal.
	Completed

	// Canceled is terminal.
	Canceled
)

var statusNames = map[Status]string{
	Pending:    "pending",
	Pickup:     "pickup",
	OnWay:      "on_way",
	InProgress: "in_progress",
	Completed:  "completed",
	Canceled:   "canceled",
}

// ParseStatus converts a wire name such as "on_way" into a Status.
func ParseStatus(s string) (Status, error) {
	for st, name := range statusNames {
		if name == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of the named statuses.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name, or "unknown" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether no transition may leave s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Canceled
}
