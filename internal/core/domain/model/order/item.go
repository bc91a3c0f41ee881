package order

import "github.com/shopspring/decimal"

// Item is a single order line: a flower, its unit price and the quantity
// ordered. Items are passive value objects, immutable once attached to an
// order; replacing an order's items always swaps the whole list.
//
// Field constraints (enforced by Order.Violations):
//   - FlowerID and FlowerName must be non-empty
//   - Price must be >= 0
//   - Quantity must be >= 1
type Item struct {
	FlowerID   string
	FlowerName string
	Price      decimal.Decimal
	Quantity   int
}

// Subtotal returns price multiplied by quantity for this line.
func (i Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// totalOf sums the subtotals of all items. An empty list totals zero.
func totalOf(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
