// Package order provides domain entities and business logic for flower
// delivery order management. It implements the Order aggregate root with
// lifecycle management, role-gated mutation and state transitions.
//
// The package includes:
//   - Order: the aggregate root managing identity, details, items, derived
//     total and lifecycle
//   - Item: a passive value object for a single order line
//   - Status: a state machine enforcing the fulfillment workflow
//   - Role: the caller's access class (back office vs. mobile storefront)
//
// Key business rules:
//   - Orders are always created Pending with a total derived from their items
//   - Status follows pending -> confirmed -> preparing -> ready -> delivered,
//     with cancellation possible from every non-terminal status
//   - Delivered and cancelled orders reject every mutation
//   - Admins change only status; the app role changes anything but status,
//     except cancelling a pending order
//   - Only cancelled orders may be soft-deleted (without override)
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package order
