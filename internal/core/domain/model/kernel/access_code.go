package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrAccessCodeIsNotConstructed indicates a zero-value AccessCode.
var ErrAccessCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"access code must be created via NewAccessCode or AccessCodeFromString")

// AccessCode is the secondary lookup key that lets a courier without an account
// view and advance exactly one order. It wraps a random (version 4) UUID so that
// codes cannot be enumerated.
//
// Example:
//
//	code := kernel.NewAccessCode()
//	link := fmt.Sprintf("%s/delivery/%s", portalURL, code)
type AccessCode struct {
	value uuid.UUID
}

// NewAccessCode generates a fresh random code.
func NewAccessCode() AccessCode {
	return AccessCode{value: uuid.New()}
}

// AccessCodeFromString parses a code received from a deep link or from storage.
//
// Returns an ValueIsInvalidError when s is not a well formed code, and
// ErrAccessCodeIsNotConstructed for the nil UUID.
func AccessCodeFromString(s string) (AccessCode, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return AccessCode{}, errs.NewValueIsInvalidErrorWithCause("access code", fmt.Errorf("invalid format: %w", err))
	}

	code := AccessCode{value: id}
	if err = code.Validate(); err != nil {
		return AccessCode{}, err
	}

	return code, nil
}

// String returns the canonical textual form used in links and in the database.
func (c AccessCode) String() string {
	return c.value.String()
}

// IsEqual reports whether both codes hold the same token.
func (c AccessCode) IsEqual(other AccessCode) bool {
	return c.value == other.value
}

// Validate rejects the zero value.
func (c AccessCode) Validate() error {
	if c.value == uuid.Nil {
		return ErrAccessCodeIsNotConstructed
	}
	return nil
}

// UUID exposes the underlying token for storage adapters.
func (c AccessCode) UUID() uuid.UUID {
	return c.value
}
