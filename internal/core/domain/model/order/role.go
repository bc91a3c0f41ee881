package order

import (
	"fmt"

	"flowershop/internal/pkg/errs"
)

// Role is the caller's access class. It gates which order fields an update
// request may mutate: the back office only moves status through the
// transition table, while the mobile storefront edits order details but
// never status (save for cancelling a pending order).
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleAdmin is the administrative back office.
	RoleAdmin

	// RoleApp is the mobile storefront client.
	RoleApp
)

// getRoleStrings returns a map of valid Role values to the client type
// header values that identify them.
func getRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleAdmin: "admin",
		RoleApp:   "ios",
	}
}

// RoleFromString parses a role from the X-Client-Type header value.
// Returns an error for strings that name no valid role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid client type", s),
	)
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the client type name of the role.
// Invalid values yield "unknown". Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
