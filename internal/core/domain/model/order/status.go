package order

import (
	"fmt"
	"strings"

	"flowershop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──> Delivered
//	   │            │             │           │
//	   └────────────┴─────────────┴───────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no transition leaves them.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned to every new order,
	// regardless of what the client supplied.
	Pending

	// Confirmed indicates the back office accepted the order.
	Confirmed

	// Preparing indicates the bouquet is being assembled.
	Preparing

	// Ready indicates the order awaits delivery pickup.
	Ready

	// Delivered indicates the order reached the customer.
	// This is a terminal state.
	Delivered

	// Cancelled indicates the order was called off.
	// This is a terminal state; only cancelled orders may be soft-deleted.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Preparing: "preparing",
		Ready:     "ready",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		Preparing: "preparing",
		Ready:     "ready",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getAllowedTransitions returns the static transition table: for every
// status, the set of statuses an administrator may move the order into.
// Terminal statuses have no outgoing transitions.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Confirmed, Cancelled},
		Confirmed: {Preparing, Cancelled},
		Preparing: {Ready, Cancelled},
		Ready:     {Delivered, Cancelled},
		Delivered: {},
		Cancelled: {},
	}
}

// StatusFromString parses a status from its wire representation.
// Matching is case-insensitive: "PENDING" and "pending" are equivalent.
// Returns an error for strings that name no valid status.
func StatusFromString(s string) (Status, error) {
	lowered := strings.ToLower(s)
	for status, str := range getValidStatusStrings() {
		if str == lowered {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Confirmed, Preparing, Ready, Delivered,
// Cancelled. Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the lowercase wire name of the status.
// Invalid values yield "unknown". Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves this status.
// Orders in a terminal status reject every mutation.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the transition table permits moving from
// this status to the target status.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// AllowedNext returns the statuses reachable from this status per the
// transition table. Terminal and invalid statuses yield an empty slice.
func (s Status) AllowedNext() []Status {
	allowed, ok := getAllowedTransitions()[s]
	if !ok {
		return []Status{}
	}
	next := make([]Status, len(allowed))
	copy(next, allowed)
	return next
}

// AllowedTransitionsFor returns the transition table as seen by a caller
// role, used to build actionable guidance when a transition is rejected.
// Admins see the full table. The app role may only cancel a pending order,
// so every other row is empty.
func AllowedTransitionsFor(role Role) map[Status][]Status {
	if role == RoleAdmin {
		return getAllowedTransitions()
	}
	return map[Status][]Status{
		Pending:   {Cancelled},
		Confirmed: {},
		Preparing: {},
		Ready:     {},
		Delivered: {},
		Cancelled: {},
	}
}
