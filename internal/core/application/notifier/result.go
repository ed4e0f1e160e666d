package notifier

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/order"
)

var (
	// ErrDriverNotificationFailed means a driver could not be told about an assignment.
	ErrDriverNotificationFailed = errors.New("driver notification failed")

	// ErrVendorNotificationFailed means a required vendor send failed.
	ErrVendorNotificationFailed = errors.New("vendor notification failed")

	// ErrDriverCancelNotificationFailed means the driver of a canceled order could not be told.
	ErrDriverCancelNotificationFailed = errors.New("driver cancel notification failed")

	// ErrRequiredNotificationFailed is returned for required sends to any other stakeholder.
	ErrRequiredNotificationFailed = errors.New("required notification failed")
)

// NotificationOutcome is the result of one stakeholder send.
// A stakeholder without a contact on file is not attempted and never counts as a failure.
type NotificationOutcome struct {
	Stakeholder order.Stakeholder
	Required    bool
	Attempted   bool
	Succeeded   bool
	Err         error
}

// Failed reports whether the send was attempted and did not go through.
func (o NotificationOutcome) Failed() bool {
	return o.Attempted && !o.Succeeded
}

// DispatchResult holds the outcome of every stakeholder considered for a status.
type DispatchResult struct {
	OrderID  int64
	Status   order.Status
	Outcomes []NotificationOutcome
}

// Outcome returns the recorded outcome for s, if s was considered at all.
func (r DispatchResult) Outcome(s order.Stakeholder) (NotificationOutcome, bool) {
	for _, o := range r.Outcomes {
		if o.Stakeholder == s {
			return o, true
		}
	}
	return NotificationOutcome{}, false
}

// Err reports the failed required sends, each matching its stakeholder's sentinel.
// Best-effort failures never produce an error.
func (r DispatchResult) Err() error {
	var failures []error
	for _, o := range r.Outcomes {
		if !o.Required || !o.Failed() {
			continue
		}
		failures = append(failures, fmt.Errorf("%w: order %d %s: %w",
			requiredFailure(o.Stakeholder, r.Status), r.OrderID, r.Status, o.Err))
	}
	return errors.Join(failures...)
}

func requiredFailure(s order.Stakeholder, status order.Status) error {
	switch {
	case s == order.Vendor:
		return ErrVendorNotificationFailed
	case s == order.Driver && status == order.Canceled:
		return ErrDriverCancelNotificationFailed
	case s == order.Driver:
		return ErrDriverNotificationFailed
	default:
		return ErrRequiredNotificationFailed
	}
}
