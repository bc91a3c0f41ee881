package ports

import (
	"context"
	"time"

	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Soft-deleted orders are invisible to every lookup; only Purge touches them.
type OrderRepository interface {
	// Add persists a new order aggregate to storage, assigning timestamps
	// and the initial version, and returns the stored order.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Update persists changes to an existing order aggregate using an
	// optimistic version check: the write only applies when the stored
	// version still matches the version the aggregate was read at.
	// Returns the stored order on success, *errs.VersionConflictError when
	// another writer got there first, and *errs.ObjectNotFoundError when
	// the row no longer exists.
	Update(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Get retrieves an active (non-deleted) order by its identifier.
	// Returns *errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves all active orders, optionally filtered by status.
	// A nil filter returns every active order.
	GetAll(ctx context.Context, statusFilter *order.Status) ([]*order.Order, error)

	// SoftDelete marks the order as logically deleted, hiding it from
	// subsequent lookups. Returns *errs.ObjectNotFoundError when no active
	// order with the id exists.
	SoftDelete(ctx context.Context, id kernel.UUID) error

	// PurgeDeletedBefore permanently removes orders soft-deleted before the
	// cutoff. Returns the number of rows removed.
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
