// Package errs provides standardized error types for the marketplace order service.
// Every error type pairs a sentinel (usable with errors.Is) with a struct that carries
// the details of the failure.
//
// The package includes:
//   - ObjectNotFoundError: a referenced object does not exist
//   - ValueIsInvalidError, ValueIsRequiredError, ValueIsOutOfRangeError: input validation
//   - VersionIsInvalidError: malformed or stale version markers
//   - UnauthorizedError: the caller is not the party an operation requires
//   - ErrConcurrentModification, ErrObjectAlreadyExists: persistence conflicts
//
// Each struct type exposes the parameter it concerns, an optional Cause, an Error()
// method that formats a single-line message and an Unwrap() method returning the
// sentinel, so callers classify failures with errors.Is and read details with errors.As.
package errs
