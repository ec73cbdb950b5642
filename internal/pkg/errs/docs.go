// Package errs provides the typed errors shared by the pickup dispatch service.
//
// Each kind follows the same shape:
//   - a sentinel (ErrObjectNotFound, ErrValueIsRequired, ErrInvariantViolated, ...)
//   - a struct carrying the offending parameter and an optional cause
//   - New...Error and New...ErrorWithCause constructors
//   - Unwrap returning the sentinel, so errors.Is classifies wrapped failures
//
// The HTTP adapter maps the sentinels to status codes; nothing below the
// adapter formats user-facing messages.
package errs
