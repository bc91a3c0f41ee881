// Package queries contains read-only operations for the CQRS read side.
// Query handlers bypass the domain model and read the database directly,
// returning lightweight response structures instead of aggregates.
package queries

import (
	"errors"
	"time"

	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/core/domain/model/order"
	"flowershop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves all active orders, optionally narrowed to a
// single status. Soft-deleted orders never appear in the result.
type GetAllOrdersQuery struct {
	statusFilter *order.Status

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to list active orders. A nil filter
// returns every active order; a non-nil filter must be a valid status.
func NewGetAllOrdersQuery(statusFilter *order.Status) (GetAllOrdersQuery, error) {
	if statusFilter != nil {
		if err := statusFilter.Validate(); err != nil {
			return GetAllOrdersQuery{}, err
		}
	}

	return GetAllOrdersQuery{
		statusFilter: statusFilter,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// StatusFilter returns the status to narrow the listing to, or nil.
func (q GetAllOrdersQuery) StatusFilter() *order.Status {
	return q.statusFilter
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// OrderResponse is the read-side representation of a stored order.
type OrderResponse struct {
	ID              kernel.UUID
	CustomerName    string
	DeliveryAddress string
	Items           []OrderItemResponse
	TotalAmount     decimal.Decimal
	Status          string
	Version         int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItemResponse is a single order line in a read-side response.
type OrderItemResponse struct {
	FlowerID   string          `json:"flowerId"`
	FlowerName string          `json:"flowerName"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
}
