package commands

import (
	"errors"

	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/pkg/guard"
)

var ErrSoftDeleteOrderCommandIsNotConstructed = errors.New(
	"SoftDeleteOrderCommand must be created via NewSoftDeleteOrderCommand constructor",
)

// SoftDeleteOrderCommand represents a request to logically remove an order.
// Only cancelled orders may be deleted unless ignoreState overrides the
// state check (back-office cleanup).
type SoftDeleteOrderCommand struct {
	orderID     kernel.UUID
	ignoreState bool

	guard guard.ConstructorGuard
}

// NewSoftDeleteOrderCommand creates a command to soft-delete an order.
func NewSoftDeleteOrderCommand(orderID kernel.UUID, ignoreState bool) (SoftDeleteOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SoftDeleteOrderCommand{}, err
	}

	return SoftDeleteOrderCommand{
		orderID:     orderID,
		ignoreState: ignoreState,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSoftDeleteOrderCommandIsNotConstructed if validation fails.
func (c SoftDeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrSoftDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to delete.
func (c SoftDeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// IgnoreState reports whether the cancelled-only state check is bypassed.
func (c SoftDeleteOrderCommand) IgnoreState() bool {
	return c.ignoreState
}
