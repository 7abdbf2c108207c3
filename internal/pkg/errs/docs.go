// Package errs provides standardized error types for the order tracking
// application. It implements a consistent pattern for error creation, formatting,
// and unwrapping that is used throughout the application.
//
// The package covers the error taxonomy of the service:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is malformed or unrecognized
//   - ObjectNotFoundError: For when a referenced object does not exist
//   - ObjectAlreadyExistsError: For uniqueness conflicts such as duplicate registration
//   - BusinessRuleViolationError: For violated domain rules such as an illegal
//     status transition
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Adapters classify errors exclusively through errors.Is against the
// sentinels, never by inspecting messages.
package errs
