package commands

import (
	"context"
	"errors"
	"fmt"

	"flowershop/internal/core/domain/model/order"
	"flowershop/internal/pkg/errs"
)

// ErrOrderVanished indicates a consistency fault: the order existed when the
// transaction read it but was gone by the time the write ran. This is not a
// user error and is reported separately from a plain not-found.
var ErrOrderVanished = errors.New("order vanished during update")

// UpdateOrderCommandHandler handles role-gated order updates.
//
// The read and the conditional write run inside one unit of work, and the
// write carries the version the order was read at. Two concurrent updates on
// the same order can both pass the policy checks, but only the first write
// lands; the second fails with *errs.VersionConflictError instead of
// silently overwriting the transition.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
// Requires an OrderUoWFactory for transactional persistence.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command and returns the stored order.
//
// Failure modes, all leaving persisted state unchanged:
//   - *errs.ObjectNotFoundError: no active order with the id
//   - *order.TerminalStateError: the order is delivered or cancelled
//   - *order.InvalidTransitionError: the requested status change is not in
//     the transition table for the caller's role
//   - *order.ForbiddenFieldError: the app role requested a status change
//     other than cancelling a pending order
//   - *order.ValidationError: patched detail fields break a constraint
//   - *errs.VersionConflictError: a concurrent update won the race
//   - ErrOrderVanished: the row disappeared between read and write
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	existing, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if existing.Status().IsTerminal() {
		return nil, order.NewTerminalStateError(existing.Status())
	}

	// An empty patch changes nothing; skip the write so the version and
	// updated_at stay put.
	if cmd.Details().IsEmpty() && cmd.Status() == nil {
		return existing, nil
	}

	if !cmd.Details().IsEmpty() {
		if err = existing.UpdateDetails(cmd.Details()); err != nil {
			return nil, err
		}
	}

	if status := cmd.Status(); status != nil {
		if err = existing.ChangeStatus(*status, cmd.Role()); err != nil {
			return nil, err
		}
	}

	stored, err := repo.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrOrderVanished, cmd.OrderID())
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
