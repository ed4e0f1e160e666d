package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Kind selects the status vocabulary and the downstream fulfiller of an order.
type Kind int

const (
	// UnknownKind catches uninitialized values.
	UnknownKind Kind = iota

	// Delivery orders carry a store's products to a hotel room.
	Delivery

	// Service orders carry a guest's item from the hotel to an in-city service vendor.
	Service
)

var kindNames = map[Kind]string{
	Delivery: "delivery",
	Service:  "service",
}

// ParseKind converts the wire name ("delivery", "service") into a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a valid order kind", s))
}

// Validate rejects UnknownKind and out of range values.
func (k Kind) Validate() error {
	if _, ok := kindNames[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid order kind", k))
	}
	return nil
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}
