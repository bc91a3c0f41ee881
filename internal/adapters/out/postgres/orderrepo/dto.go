// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Order lines live in a jsonb column; the status is stored by its wire name
// so rows stay readable in ad-hoc SQL. DeletedAt drives soft deletion: GORM
// excludes deleted rows from every query that does not opt out via Unscoped.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerName    string
	DeliveryAddress string
	Items           ItemsDTO        `gorm:"type:jsonb"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(12,2)"`
	Status          string          `gorm:"type:varchar(16);index"`
	Version         int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is the jsonb shape of a single order line.
type ItemDTO struct {
	FlowerID   string          `json:"flowerId"`
	FlowerName string          `json:"flowerName"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
}

// ItemsDTO stores order lines as a single jsonb value.
type ItemsDTO []ItemDTO

// Value implements driver.Valuer, serializing the items to jsonb.
func (items ItemsDTO) Value() (driver.Value, error) {
	if items == nil {
		items = ItemsDTO{}
	}
	return json.Marshal(items)
}

// Scan implements sql.Scanner, deserializing jsonb into the items slice.
func (items *ItemsDTO) Scan(value any) error {
	if value == nil {
		*items = ItemsDTO{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}

	return json.Unmarshal(raw, items)
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	domainItems := aggregate.Items()
	items := make(ItemsDTO, 0, len(domainItems))
	for _, item := range domainItems {
		items = append(items, ItemDTO{
			FlowerID:   item.FlowerID,
			FlowerName: item.FlowerName,
			Price:      item.Price,
			Quantity:   item.Quantity,
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerName:    aggregate.CustomerName(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Items:           items,
		TotalAmount:     aggregate.TotalAmount(),
		Status:          aggregate.Status().String(),
		Version:         aggregate.Version(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including version and timestamps using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, order.Item{
			FlowerID:   item.FlowerID,
			FlowerName: item.FlowerName,
			Price:      item.Price,
			Quantity:   item.Quantity,
		})
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName,
		dto.DeliveryAddress,
		items,
		dto.TotalAmount,
		status,
		dto.Version,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
