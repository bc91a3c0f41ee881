package commands

import (
	"context"
)

// SoftDeleteOrderCommandHandler handles logical order removal.
// A soft-deleted order keeps its row but disappears from every lookup, so
// deleting the same id twice fails with a not-found error.
type SoftDeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSoftDeleteOrderCommandHandler creates a handler for order soft deletion.
// Requires an OrderUoWFactory for transactional persistence.
func NewSoftDeleteOrderCommandHandler(uowFactory OrderUoWFactory) SoftDeleteOrderCommandHandler {
	return SoftDeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the soft-delete command.
// Fails with *errs.ObjectNotFoundError when no active order has the id and
// with *order.DeleteStateError when the order is not cancelled and the
// override is not set.
func (h *SoftDeleteOrderCommandHandler) Handle(ctx context.Context, cmd SoftDeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	existing, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = existing.EnsureDeletable(cmd.IgnoreState()); err != nil {
		return err
	}

	if err = repo.SoftDelete(ctx, existing.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
