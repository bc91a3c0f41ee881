// Package errs provides standardized error types for the flower order service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for common failure scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value violates a constraint
//   - ValueIsOutOfRangeError: For when a numeric value falls outside its bounds
//   - ObjectNotFoundError: For when a lookup by identifier finds nothing
//   - VersionConflictError: For when an optimistic concurrency check loses a race
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers branch on the sentinel with errors.Is and read details with
// errors.As, keeping expected business outcomes distinct from unexpected
// faults.
package errs
