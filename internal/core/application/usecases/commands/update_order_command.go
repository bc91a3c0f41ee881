package commands

import (
	"errors"

	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/core/domain/model/order"
	"flowershop/internal/pkg/errs"
	"flowershop/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a role-gated request to change an order.
//
// The payload shape depends on the caller's role:
//   - Admin requests carry exactly a status; any detail fields are dropped
//     at construction so they can never leak into the write.
//   - App requests carry a details patch and, at most, a cancellation status
//     (the aggregate enforces the status policy).
type UpdateOrderCommand struct {
	orderID kernel.UUID
	role    order.Role
	status  *order.Status
	details order.DetailsPatch

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an order on behalf of a
// role. Admin commands without a status fail with a "status required" error;
// detail fields supplied by an admin are ignored, not rejected.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	role order.Role,
	status *order.Status,
	details order.DetailsPatch,
) (UpdateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}
	if err := role.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}

	if role == order.RoleAdmin {
		if status == nil {
			return UpdateOrderCommand{}, errs.NewValueIsRequiredError("status")
		}
		details = order.DetailsPatch{}
	}

	return UpdateOrderCommand{
		orderID: orderID,
		role:    role,
		status:  status,
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Role returns the caller's access class.
func (c UpdateOrderCommand) Role() order.Role {
	return c.role
}

// Status returns the requested status, or nil when none was supplied.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

// Details returns the detail fields to patch. Empty for admin commands.
func (c UpdateOrderCommand) Details() order.DetailsPatch {
	return c.details
}
