package orderrepo

import (
	"context"
	"errors"
	"time"

	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/core/domain/model/order"
	"flowershop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// Concurrency control is optimistic: every row carries a version counter and
// Update only applies when the stored version still matches the version the
// aggregate was read at. Soft deletion rides on GORM's DeletedAt handling,
// so deleted rows are invisible to Get and GetAll without extra predicates.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order, assigning the initial version, and returns the
// stored aggregate with its database timestamps.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	dto.Version = 1
	dto.CreatedAt = time.Time{}
	dto.UpdatedAt = time.Time{}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	stored, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return stored, nil
}

// Update saves an existing order under an optimistic version check.
// The write carries the version the aggregate was read at; losing the race
// yields *errs.VersionConflictError and a vanished row yields
// *errs.ObjectNotFoundError. Returns the stored aggregate on success.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Updates(map[string]any{
			"customer_name":    dto.CustomerName,
			"delivery_address": dto.DeliveryAddress,
			"items":            dto.Items,
			"total_amount":     dto.TotalAmount,
			"status":           dto.Status,
			"version":          aggregate.Version() + 1,
		})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		// Either the row is gone or another writer bumped the version.
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&OrderDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return nil, errs.NewVersionConflictError("order", aggregate.ID().String())
	}

	var storedDTO OrderDTO
	if err := r.db.WithContext(ctx).First(&storedDTO, "id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	stored, err := toDomain(storedDTO)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return stored, nil
}

// Get retrieves an active order by ID. Soft-deleted rows are not found.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all active orders, optionally filtered by status,
// oldest first.
func (r *GormOrderRepository) GetAll(ctx context.Context, statusFilter *order.Status) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).Order("created_at")
	if statusFilter != nil {
		if err := statusFilter.Validate(); err != nil {
			return nil, err
		}
		query = query.Where("status = ?", statusFilter.String())
	}

	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// SoftDelete marks the order as deleted. The row survives for auditing but
// no longer appears in any lookup, so deleting twice reports not found.
func (r *GormOrderRepository) SoftDelete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// PurgeDeletedBefore permanently removes orders soft-deleted before the
// cutoff and returns the number of rows removed. Active rows are untouched.
func (r *GormOrderRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&OrderDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
