// Package errs provides standardized error types for the fulfillment service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used by the domain model and the persistence adapters.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a value is outside its allowed bounds
//   - ObjectNotFoundError: an object cannot be found by its identifier
//
// Each error type has a sentinel (e.g. ErrObjectNotFound) returned by Unwrap, so
// callers classify failures with errors.Is and read details with errors.As.
package errs
