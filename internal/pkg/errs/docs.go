// Package errs provides standardized error types for the fulfilment application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the caller-visible failure kinds of the core:
//   - ObjectNotFoundError: a referenced warehouse/assignment/product/store/location
//     does not exist or is archived
//   - ObjectAlreadyExistsError: duplicate business-unit code or assignment triple
//   - LimitExceededError: a location or fulfillment cardinality limit would be violated
//   - InvalidStateError: the mutation conflicts with current aggregate state
//   - ValueIsRequiredError / ValueIsInvalidError: malformed or missing input
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Validation failures abort the remaining checks immediately; checks are never
// accumulated, so every error here reports the first violation encountered.
package errs
