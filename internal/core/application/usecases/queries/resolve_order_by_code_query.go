package queries

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrResolveOrderByCodeQueryIsNotConstructed = errors.New(
		"ResolveOrderByCodeQuery must be created via NewResolveOrderByCodeQuery constructor",
	)

	// ErrInvalidOrExpiredCode is returned for unknown, malformed and expired access
	// codes alike, so a caller cannot tell which one it hit.
	ErrInvalidOrExpiredCode = errors.New("invalid or expired access code")
)

// ParseAccessCode parses a code received from a driver. Malformed input is
// reported as ErrInvalidOrExpiredCode.
func ParseAccessCode(s string) (kernel.AccessCode, error) {
	code, err := kernel.AccessCodeFromString(s)
	if err != nil {
		return kernel.AccessCode{}, ErrInvalidOrExpiredCode
	}
	return code, nil
}

// ResolveOrderByCodeQuery looks up the order a driver access code unlocks.
//
// Example:
//
//	code, err := ParseAccessCode(c.Param("code"))
//	query, err := NewResolveOrderByCodeQuery(order.Delivery, code)
//	o, err := handler.Handle(ctx, query)
type ResolveOrderByCodeQuery struct {
	kind order.Kind
	code kernel.AccessCode

	guard guard.ConstructorGuard
}

func NewResolveOrderByCodeQuery(kind order.Kind, code kernel.AccessCode) (ResolveOrderByCodeQuery, error) {
	if err := kind.Validate(); err != nil {
		return ResolveOrderByCodeQuery{}, err
	}
	if err := code.Validate(); err != nil {
		return ResolveOrderByCodeQuery{}, fmt.Errorf("%w: %w", ErrInvalidOrExpiredCode, err)
	}

	return ResolveOrderByCodeQuery{
		kind:  kind,
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ResolveOrderByCodeQuery) Validate() error {
	return q.guard.Validate(ErrResolveOrderByCodeQueryIsNotConstructed)
}

func (q ResolveOrderByCodeQuery) Kind() order.Kind {
	return q.kind
}

func (q ResolveOrderByCodeQuery) Code() kernel.AccessCode {
	return q.code
}
