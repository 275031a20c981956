// Package errs provides standardized error types for the cargotrack application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type carrying error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Domain-specific failures (illegal transitions, stale versions, duplicate
// track numbers) are plain sentinel errors declared next to the code that
// raises them; this package covers the generic validation vocabulary.
package errs
