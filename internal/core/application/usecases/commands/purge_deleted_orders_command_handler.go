package commands

import (
	"context"
	"time"
)

// PurgeDeletedOrdersCommandHandler permanently removes orders whose soft
// deletion is older than the retention window. Runs from the scheduled
// purge job; active orders are never touched.
type PurgeDeletedOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPurgeDeletedOrdersCommandHandler creates a handler for purging old
// soft-deleted orders.
func NewPurgeDeletedOrdersCommandHandler(uowFactory OrderUoWFactory) PurgeDeletedOrdersCommandHandler {
	return PurgeDeletedOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purge command and returns the number of rows removed.
func (h *PurgeDeletedOrdersCommandHandler) Handle(ctx context.Context, cmd PurgeDeletedOrdersCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := time.Now().AddDate(0, 0, -cmd.RetentionDays())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	purged, err := uow.OrderRepository().PurgeDeletedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
