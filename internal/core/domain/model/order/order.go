package order

import (
	"errors"
	"fmt"
	"time"

	"flowershop/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order represents a customer's flower purchase request. It is the aggregate
// root that manages the order lifecycle from creation through fulfillment to
// soft deletion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Customer name and delivery address must be non-empty
//   - Total amount equals the sum of price x quantity over the items whenever
//     items are supplied or replaced (zero for an empty list)
//   - Status starts at Pending and changes only through the transition policy
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerName is the person the bouquet is for
	customerName string

	// deliveryAddress is where the order is delivered
	deliveryAddress string

	// items are the order lines; the list may be empty
	items []Item

	// totalAmount is derived from the items and never set directly
	totalAmount decimal.Decimal

	// status is the current state in the order lifecycle
	status Status

	// version is the optimistic concurrency counter, bumped on every write
	version int64

	// createdAt and updatedAt are owned by the persistence layer
	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order with status Pending and a total derived from
// the items, regardless of anything the client supplied. Returns a
// *ValidationError carrying the full violation list if any field constraint
// is broken. An empty item list is valid.
func NewOrder(id kernel.UUID, customerName, deliveryAddress string, items []Item) (*Order, error) {
	o := &Order{
		id:              id,
		customerName:    customerName,
		deliveryAddress: deliveryAddress,
		items:           append([]Item(nil), items...),
		totalAmount:     totalOf(items),
		status:          Pending,
		isConstructed:   true,
	}

	if violations := o.Violations(); len(violations) > 0 {
		return nil, NewValidationError(violations)
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. The stored total is
// trusted as-is; only structural validity (identifier, status) is checked.
func RestoreOrder(
	id kernel.UUID,
	customerName, deliveryAddress string,
	items []Item,
	totalAmount decimal.Decimal,
	status Status,
	version int64,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:              id,
		customerName:    customerName,
		deliveryAddress: deliveryAddress,
		items:           append([]Item(nil), items...),
		totalAmount:     totalAmount,
		status:          status,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order was created through a factory function.
// Returns ErrOrderIsNotConstructed for zero-value instances.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// Violations returns every field constraint broken by the order's current
// state. An empty slice means the order is valid. An empty item list raises
// no violation.
func (o *Order) Violations() []Violation {
	var violations []Violation

	if err := o.id.Validate(); err != nil {
		violations = append(violations, Violation{Field: "id", Constraint: "is required"})
	}
	if o.customerName == "" {
		violations = append(violations, Violation{Field: "customerName", Constraint: "must not be empty"})
	}
	if o.deliveryAddress == "" {
		violations = append(violations, Violation{Field: "deliveryAddress", Constraint: "must not be empty"})
	}
	if err := o.status.Validate(); err != nil {
		violations = append(violations, Violation{Field: "status", Constraint: "must be a valid order status"})
	}
	if o.totalAmount.IsNegative() {
		violations = append(violations, Violation{Field: "totalAmount", Constraint: "must be at least 0"})
	}

	for i, item := range o.items {
		violations = append(violations, itemViolations(i, item)...)
	}

	return violations
}

func itemViolations(index int, item Item) []Violation {
	var violations []Violation

	field := func(name string) string {
		return fmt.Sprintf("orderItems[%d].%s", index, name)
	}
	if item.FlowerID == "" {
		violations = append(violations, Violation{Field: field("flowerId"), Constraint: "must not be empty"})
	}
	if item.FlowerName == "" {
		violations = append(violations, Violation{Field: field("flowerName"), Constraint: "must not be empty"})
	}
	if item.Price.IsNegative() {
		violations = append(violations, Violation{Field: field("price"), Constraint: "must be at least 0"})
	}
	if item.Quantity < 1 {
		violations = append(violations, Violation{Field: field("quantity"), Constraint: "must be at least 1"})
	}

	return violations
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the customer the order is for.
func (o *Order) CustomerName() string {
	return o.customerName
}

// DeliveryAddress returns the order's delivery address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// TotalAmount returns the derived order total.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Version returns the optimistic concurrency counter the order was read at.
func (o *Order) Version() int64 {
	return o.version
}

// CreatedAt returns the persistence-assigned creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the persistence-assigned last update timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus moves the order to a new status on behalf of a role.
//
// Policy, checked in this order:
//   - a terminal (delivered/cancelled) order rejects every change with
//     *TerminalStateError
//   - admins may request exactly the transitions present in the transition
//     table; anything else, the current status included, fails with
//     *InvalidTransitionError
//   - for the app role requesting the current status is a no-op; otherwise
//     the app may only cancel a pending order: cancelling from any other
//     status fails with *InvalidTransitionError, and any other status value
//     fails with *ForbiddenFieldError
func (o *Order) ChangeStatus(target Status, role Role) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if err := role.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return NewTerminalStateError(o.status)
	}

	switch role {
	case RoleAdmin:
		if !o.status.CanTransitionTo(target) {
			return NewInvalidTransitionError(o.status, target, role)
		}
	case RoleApp:
		if target == o.status {
			return nil
		}
		if target != Cancelled {
			return NewForbiddenFieldError("status", role)
		}
		if o.status != Pending {
			return NewInvalidTransitionError(o.status, target, role)
		}
	default:
		return NewForbiddenFieldError("status", role)
	}

	o.status = target
	return nil
}

// DetailsPatch carries the fields an app-role update may change. Nil fields
// are left untouched; a non-nil Items replaces the whole list.
type DetailsPatch struct {
	CustomerName    *string
	DeliveryAddress *string
	Items           []Item
}

// IsEmpty reports whether the patch changes nothing.
func (p DetailsPatch) IsEmpty() bool {
	return p.CustomerName == nil && p.DeliveryAddress == nil && p.Items == nil
}

// UpdateDetails applies an app-role patch. When items are supplied the total
// is recomputed from the new list; otherwise items and total are retained.
// Never touches status. Returns *TerminalStateError for delivered/cancelled
// orders and *ValidationError when the patched order breaks a constraint.
func (o *Order) UpdateDetails(patch DetailsPatch) error {
	if o.status.IsTerminal() {
		return NewTerminalStateError(o.status)
	}

	if patch.CustomerName != nil {
		o.customerName = *patch.CustomerName
	}
	if patch.DeliveryAddress != nil {
		o.deliveryAddress = *patch.DeliveryAddress
	}
	if patch.Items != nil {
		o.items = append([]Item(nil), patch.Items...)
		o.totalAmount = totalOf(o.items)
	}

	if violations := o.Violations(); len(violations) > 0 {
		return NewValidationError(violations)
	}

	return nil
}

// EnsureDeletable checks the soft-delete policy: only cancelled orders may
// be deleted unless force overrides the state check. Returns
// *DeleteStateError when the policy rejects the delete.
func (o *Order) EnsureDeletable(force bool) error {
	if force {
		return nil
	}
	if o.status != Cancelled {
		return NewDeleteStateError(o.status)
	}
	return nil
}
