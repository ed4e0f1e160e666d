package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// AccessCodeTTL is how long after creation an order's driver access code resolves.
const AccessCodeTTL = 3 * time.Hour

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or Restore.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or Restore")

	// ErrInvalidTransition is the sentinel wrapped by every TransitionError.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrDriverAlreadyAssigned is returned when a different driver is already recorded on the order.
	ErrDriverAlreadyAssigned = errors.New("order already has a different driver")
)

// TransitionError describes a rejected status change.
type TransitionError struct {
	Kind   Kind
	From   Status
	To     Status
	Reason string
}

func (e *TransitionError) Error() string {
	msg := fmt.Sprintf("%s: %s order from %s to %s", ErrInvalidTransition, e.Kind, e.From, e.To)
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Order is the aggregate root for a delivery or service order.
//
// Order follows these invariants:
//   - id, kind, cityID, accessCode and createdAt never change after construction
//   - status moves only along the edges of the kind's policy
//   - driverID is set by AssignDriver and never replaced by a different driver
//   - contacts are copied in once and owned by the order afterwards
type Order struct {
	id         int64
	kind       Kind
	status     Status
	cityID     int64
	driverID   *int64
	accessCode kernel.AccessCode
	createdAt  time.Time

	client kernel.Contact
	vendor kernel.Contact
	driver kernel.Contact

	notes string

	policy        KindPolicy
	isConstructed bool
}

// NewOrder creates a PENDING order with no driver and a freshly generated access code.
// It is the persistence contract of the order placement flow.
//
// Parameters:
//   - id: positive identifier assigned by the placement flow
//   - kind: Delivery or Service
//   - cityID: positive city the order is fulfilled in
//   - client: required client contact (hotel and room as location)
//   - vendor: store or service vendor contact; the zero Contact means none on file
//   - createdAt: creation time, the start of the access code window
//
// Example:
//
//	client, _ := kernel.NewContact("Guest 301", "chat:555", "Grand Hotel, room 301")
//	vendor, _ := kernel.NewContact("Corner Store", "chat:777", "12 Palm Street")
//	o, err := order.NewOrder(1, order.Delivery, 5, client, vendor, time.Now())
func NewOrder(
	id int64,
	kind Kind,
	cityID int64,
	client kernel.Contact,
	vendor kernel.Contact,
	createdAt time.Time,
) (*Order, error) {
	return Restore(Snapshot{
		ID:         id,
		Kind:       kind,
		Status:     Pending,
		CityID:     cityID,
		AccessCode: kernel.NewAccessCode(),
		CreatedAt:  createdAt,
		Client:     client,
		Vendor:     vendor,
	})
}

// Snapshot is the full persisted state of an order.
type Snapshot struct {
	ID         int64
	Kind       Kind
	Status     Status
	CityID     int64
	DriverID   *int64
	AccessCode kernel.AccessCode
	CreatedAt  time.Time
	Client     kernel.Contact
	Vendor     kernel.Contact
	Driver     kernel.Contact
	Notes      string
}

// Restore rebuilds an order from persisted state, validating every field.
func Restore(s Snapshot) (*Order, error) {
	o := &Order{
		driverID:      s.DriverID,
		accessCode:    s.AccessCode,
		createdAt:     s.CreatedAt,
		vendor:        s.Vendor,
		driver:        s.Driver,
		notes:         s.Notes,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setKind(s.Kind),
		o.setStatus(s.Status),
		o.setCityID(s.CityID),
		o.setClient(s.Client),
		s.AccessCode.Validate(),
	); err != nil {
		return nil, err
	}

	if (s.Status == OnWay || s.Status == InProgress) && s.Status != o.policy.InTransit() {
		return nil, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s is not a %s status", s.Status, s.Kind))
	}
	if s.CreatedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}
	if s.Status == Pickup && s.DriverID == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("driverID", errors.New("pickup order has no driver"))
	}

	return o, nil
}

// Snapshot exports the order's state for persistence.
func (o *Order) Snapshot() Snapshot {
	var driverID *int64
	if o.driverID != nil {
		id := *o.driverID
		driverID = &id
	}
	return Snapshot{
		ID:         o.id,
		Kind:       o.kind,
		Status:     o.status,
		CityID:     o.cityID,
		DriverID:   driverID,
		AccessCode: o.accessCode,
		CreatedAt:  o.createdAt,
		Client:     o.client,
		Vendor:     o.vendor,
		Driver:     o.driver,
		Notes:      o.notes,
	}
}

// Validate ensures the Order instance was built through NewOrder or Restore.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() int64 {
	return o.id
}

func (o *Order) Kind() Kind {
	return o.kind
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CityID() int64 {
	return o.cityID
}

// DriverID returns the assigned driver, or nil while unassigned.
func (o *Order) DriverID() *int64 {
	if o.driverID == nil {
		return nil
	}
	id := *o.driverID
	return &id
}

func (o *Order) AccessCode() kernel.AccessCode {
	return o.accessCode
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) Notes() string {
	return o.notes
}

// Policy returns the state machine and addressing rules of the order's kind.
func (o *Order) Policy() KindPolicy {
	return o.policy
}

// ContactOf returns the contact captured for s; the zero Contact when none is on file.
func (o *Order) ContactOf(s Stakeholder) kernel.Contact {
	switch s {
	case Client:
		return o.client
	case Vendor:
		return o.vendor
	case Driver:
		return o.driver
	default:
		return kernel.Contact{}
	}
}

// AccessCodeValidAt reports whether the access code still resolves at now.
// The window is measured from creation and is inclusive of its upper bound.
func (o *Order) AccessCodeValidAt(now time.Time) bool {
	return now.Sub(o.createdAt) <= AccessCodeTTL
}

// ValidateTransition checks to against the kind's edges without changing the order.
//
// Returns a *TransitionError (matching ErrInvalidTransition) when:
//   - to equals the current status
//   - to is not an outgoing edge of the current status
//   - to is PICKUP and no driver is assigned
func (o *Order) ValidateTransition(to Status) error {
	if to == o.status {
		return o.transitionError(to, "order already has this status")
	}
	if !o.policy.CanTransition(o.status, to) {
		return o.transitionError(to, "")
	}
	if to == Pickup && o.driverID == nil {
		return o.transitionError(to, "no driver assigned")
	}
	return nil
}

// Transition moves the order to status to.
//
// Example:
//
//	if err := o.Transition(order.OnWay); err != nil {
//	    // errors.Is(err, order.ErrInvalidTransition)
//	}
func (o *Order) Transition(to Status) error {
	if err := o.ValidateTransition(to); err != nil {
		return err
	}
	o.status = to
	return nil
}

// ValidateAssignDriver checks that driverID may be recorded on the order.
// Only PENDING orders accept a driver. Re-assigning the driver already on
// file is allowed so a failed PICKUP can be retried; a different driver is not.
func (o *Order) ValidateAssignDriver(driverID int64) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("driverID", fmt.Errorf("%d is not greater than 0", driverID))
	}
	if o.status != Pending {
		return o.transitionError(Pickup, "driver can only be assigned to a pending order")
	}
	if o.driverID != nil && *o.driverID != driverID {
		return ErrDriverAlreadyAssigned
	}
	return nil
}

// AssignDriver records the driver and the contact used to reach them.
// The status is not changed; moving to PICKUP is a separate transition.
func (o *Order) AssignDriver(driverID int64, contact kernel.Contact) error {
	if err := o.ValidateAssignDriver(driverID); err != nil {
		return err
	}
	if !contact.IsPresent() {
		return errs.NewValueIsRequiredError("driver contact")
	}

	o.driverID = &driverID
	o.driver = contact
	return nil
}

// SetNotes replaces the operator notes. Notes have no effect on the state machine.
func (o *Order) SetNotes(notes string) {
	o.notes = notes
}

func (o *Order) transitionError(to Status, reason string) error {
	return &TransitionError{Kind: o.kind, From: o.status, To: to, Reason: reason}
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setKind(kind Kind) error {
	policy, err := PolicyFor(kind)
	if err != nil {
		return err
	}
	o.kind = kind
	o.policy = policy
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCityID(cityID int64) error {
	if cityID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("cityID", fmt.Errorf("%d is not greater than 0", cityID))
	}
	o.cityID = cityID
	return nil
}

func (o *Order) setClient(client kernel.Contact) error {
	if !client.IsPresent() {
		return errs.NewValueIsRequiredError("client contact")
	}
	o.client = client
	return nil
}
