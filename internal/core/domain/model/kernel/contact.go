package kernel

import (
	"errors"
	"strings"
	"unicode/utf8"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// MaxContactNameLength bounds display names copied onto orders.
const MaxContactNameLength = 128

// ErrContactIsNotConstructed is returned when validating a zero-value Contact.
var ErrContactIsNotConstructed = errs.NewValueIsRequiredError("contact must be created via NewContact")

// Contact is a stakeholder's denormalized contact card captured on an order.
//
// Once copied onto an order a Contact is owned by that order and is never
// re-resolved from the upstream client, vendor or driver record, so the text of
// every notification stays stable even if those records change later.
//
// Fields:
//   - name: display name used in message bodies
//   - address: messaging destination handed to the NotificationGateway
//   - location: optional physical place (store address, hotel and room)
type Contact struct { //nolint:recvcheck //using for validation
	name     string
	address  string
	location string
	guard    guard.ConstructorGuard
}

// NewContact validates and builds a Contact. name and address are required;
// location may be empty for stakeholders that are never a pickup or drop-off point.
//
// Example:
//
//	vendor, err := kernel.NewContact("Corner Store", "chat:100200", "12 Palm Street")
//	if err != nil {
//	    return err
//	}
func NewContact(name, address, location string) (Contact, error) {
	c := Contact{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setName(name),
		c.setAddress(address),
	); err != nil {
		return Contact{}, err
	}
	c.location = strings.TrimSpace(location)

	return c, nil
}

// Validate fails for contacts that were not built by NewContact.
func (c Contact) Validate() error {
	return c.guard.Validate(ErrContactIsNotConstructed)
}

// IsPresent reports whether the contact is on file. The zero Contact means
// "no contact" and such stakeholders are skipped by notification dispatch.
func (c Contact) IsPresent() bool {
	return c.Validate() == nil && c.address != ""
}

func (c Contact) Name() string {
	return c.name
}

func (c Contact) Address() string {
	return c.address
}

func (c Contact) Location() string {
	return c.location
}

func (c *Contact) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("contact name")
	}
	if n := utf8.RuneCountInString(name); n > MaxContactNameLength {
		return errs.NewValueIsOutOfRangeError("contact name length", n, 1, MaxContactNameLength)
	}
	c.name = name
	return nil
}

func (c *Contact) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("contact address")
	}
	c.address = address
	return nil
}
