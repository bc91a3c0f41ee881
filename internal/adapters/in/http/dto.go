package http

import (
	"time"

	"flowershop/internal/core/application/usecases/queries"
	"flowershop/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderItemPayload is the wire shape of a single order line.
type OrderItemPayload struct {
	FlowerID   string          `json:"flowerId"`
	FlowerName string          `json:"flowerName"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
}

// CreateOrderRequest is the POST body for placing an order. Any totalAmount
// or status the client sends is ignored: the total is derived from the items
// and new orders always start as pending.
type CreateOrderRequest struct {
	CustomerName    string             `json:"customerName"`
	DeliveryAddress string             `json:"deliveryAddress"`
	OrderItems      []OrderItemPayload `json:"orderItems"`
}

// UpdateOrderRequest is the PATCH body for changing an order. Which fields
// are honored depends on the caller's role: admins send a status, app
// clients send detail fields and may cancel a pending order.
type UpdateOrderRequest struct {
	Status          *string            `json:"status"`
	CustomerName    *string            `json:"customerName"`
	DeliveryAddress *string            `json:"deliveryAddress"`
	OrderItems      []OrderItemPayload `json:"orderItems"`
}

// OrderPayload is the wire shape of a stored order.
type OrderPayload struct {
	ID              string             `json:"id"`
	CustomerName    string             `json:"customerName"`
	DeliveryAddress string             `json:"deliveryAddress"`
	OrderItems      []OrderItemPayload `json:"orderItems"`
	TotalAmount     decimal.Decimal    `json:"totalAmount"`
	Status          string             `json:"status"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

func toDomainItems(payload []OrderItemPayload) []order.Item {
	items := make([]order.Item, 0, len(payload))
	for _, p := range payload {
		items = append(items, order.Item{
			FlowerID:   p.FlowerID,
			FlowerName: p.FlowerName,
			Price:      p.Price,
			Quantity:   p.Quantity,
		})
	}
	return items
}

func fromAggregate(o *order.Order) OrderPayload {
	domainItems := o.Items()
	items := make([]OrderItemPayload, 0, len(domainItems))
	for _, item := range domainItems {
		items = append(items, OrderItemPayload{
			FlowerID:   item.FlowerID,
			FlowerName: item.FlowerName,
			Price:      item.Price,
			Quantity:   item.Quantity,
		})
	}

	return OrderPayload{
		ID:              o.ID().String(),
		CustomerName:    o.CustomerName(),
		DeliveryAddress: o.DeliveryAddress(),
		OrderItems:      items,
		TotalAmount:     o.TotalAmount(),
		Status:          o.Status().String(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

func fromQueryResponse(resp queries.OrderResponse) OrderPayload {
	items := make([]OrderItemPayload, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, OrderItemPayload{
			FlowerID:   item.FlowerID,
			FlowerName: item.FlowerName,
			Price:      item.Price,
			Quantity:   item.Quantity,
		})
	}

	return OrderPayload{
		ID:              resp.ID.String(),
		CustomerName:    resp.CustomerName,
		DeliveryAddress: resp.DeliveryAddress,
		OrderItems:      items,
		TotalAmount:     resp.TotalAmount,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt,
		UpdatedAt:       resp.UpdatedAt,
	}
}
