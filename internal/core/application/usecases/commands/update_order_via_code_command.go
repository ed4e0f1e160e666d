package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateOrderViaCodeCommandIsNotConstructed = errors.New(
	"UpdateOrderViaCodeCommand must be created via NewUpdateOrderViaCodeCommand constructor",
)

// UpdateOrderViaCodeCommand is a driver's status update authenticated only by the
// order's access code.
type UpdateOrderViaCodeCommand struct { //nolint:recvcheck //using for validation
	kind   order.Kind
	code   kernel.AccessCode
	target order.Status
	notes  string

	guard guard.ConstructorGuard
}

// NewUpdateOrderViaCodeCommand parses the code and validates the target.
// A malformed code fails with queries.ErrInvalidOrExpiredCode, like an unknown one.
// Empty notes leave the order's notes unchanged.
func NewUpdateOrderViaCodeCommand(
	kind order.Kind,
	code string,
	target order.Status,
	notes string,
) (UpdateOrderViaCodeCommand, error) {
	cmd := UpdateOrderViaCodeCommand{
		notes: strings.TrimSpace(notes),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setKind(kind),
		cmd.setCode(code),
		cmd.setTarget(target),
	); err != nil {
		return UpdateOrderViaCodeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderViaCodeCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderViaCodeCommandIsNotConstructed)
}

func (c UpdateOrderViaCodeCommand) Kind() order.Kind {
	return c.kind
}

func (c UpdateOrderViaCodeCommand) Code() kernel.AccessCode {
	return c.code
}

func (c UpdateOrderViaCodeCommand) Target() order.Status {
	return c.target
}

func (c UpdateOrderViaCodeCommand) Notes() string {
	return c.notes
}

func (c *UpdateOrderViaCodeCommand) setKind(kind order.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}

func (c *UpdateOrderViaCodeCommand) setCode(code string) error {
	parsed, err := queries.ParseAccessCode(code)
	if err != nil {
		return err
	}
	c.code = parsed
	return nil
}

func (c *UpdateOrderViaCodeCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
