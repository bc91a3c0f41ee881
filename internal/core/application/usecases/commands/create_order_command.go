package commands

import (
	"errors"

	"flowershop/internal/core/domain/model/order"
	"flowershop/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new flower order.
// Field constraints are deliberately not checked here: the Order aggregate
// validates the whole payload at once so the caller receives the complete
// violation list, not just the first broken field.
type CreateOrderCommand struct {
	customerName    string
	deliveryAddress string
	items           []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Any status the client supplied is dropped before this point; a created
// order always starts as pending.
func NewCreateOrderCommand(customerName, deliveryAddress string, items []order.Item) CreateOrderCommand {
	return CreateOrderCommand{
		customerName:    customerName,
		deliveryAddress: deliveryAddress,
		items:           append([]order.Item(nil), items...),
		guard:           guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerName returns the customer the order is for.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// DeliveryAddress returns the order's delivery address.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []order.Item {
	return append([]order.Item(nil), c.items...)
}
