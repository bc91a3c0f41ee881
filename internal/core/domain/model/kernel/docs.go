// Package kernel provides shared value objects used across the domain model.
//
// The package currently contains:
//   - UUID: an immutable identifier value object wrapping github.com/google/uuid
//
// Kernel types carry no business rules of their own; they exist so
// aggregates and use cases share validated building blocks instead of raw
// primitives.
package kernel
