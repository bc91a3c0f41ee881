package queries

import (
	"context"
	"database/sql"
	"encoding/json"

	"flowershop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler lists active orders straight from the database.
// Soft-deleted rows are filtered out in SQL; results come back oldest first
// so the listing is stable across calls.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query and returns all matching active orders.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			customer_name,
			delivery_address,
			items,
			total_amount,
			status,
			version,
			created_at,
			updated_at
		FROM orders
		WHERE deleted_at IS NULL
	`
	args := make([]any, 0, 1)
	if filter := query.StatusFilter(); filter != nil {
		sqlQuery += " AND status = ?"
		args = append(args, filter.String())
	}
	sqlQuery += " ORDER BY created_at"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// scanOrderRow maps one result row onto an OrderResponse, decoding the
// jsonb items column along the way.
func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		resp     OrderResponse
		id       uuid.UUID
		rawItems []byte
	)

	err := rows.Scan(
		&id,
		&resp.CustomerName,
		&resp.DeliveryAddress,
		&rawItems,
		&resp.TotalAmount,
		&resp.Status,
		&resp.Version,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID

	items := make([]OrderItemResponse, 0)
	if len(rawItems) > 0 {
		if err = json.Unmarshal(rawItems, &items); err != nil {
			return OrderResponse{}, err
		}
	}
	resp.Items = items

	return resp, nil
}
