// Package roamerr defines the error taxonomy for the Roam gateway.
//
// Every failure an operation can surface belongs to exactly one class:
// configuration (bad or missing token/graph, detected before any network
// call), validation (bad operation argument, also pre-network), upstream
// (the Roam API answered with a non-success status or an unusable payload),
// or network (the request never completed). Callers classify with errors.Is
// against the sentinels below.
package roamerr

import (
	"errors"
	"fmt"
)

// Sentinel errors for the gateway error classes.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrValidation    = errors.New("validation error")
	ErrUpstream      = errors.New("upstream error")
	ErrNetwork       = errors.New("network error")

	// ErrPageNotFound is an upstream condition: the target page does not
	// exist in the graph and auto-creation is disabled.
	ErrPageNotFound = fmt.Errorf("page not found: %w", ErrUpstream)
)

// Configurationf creates a configuration error with a formatted message.
func Configurationf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrConfiguration)...)
}

// Validationf creates a validation error with a formatted message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}

// Upstreamf creates an upstream error for unusable remote payloads.
func Upstreamf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrUpstream)...)
}

// Networkf wraps a transport failure as a network error.
func Networkf(cause error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %v: %w", msg, cause, ErrNetwork)
}

// APIError reports a non-success response from the Roam API. It carries the
// upstream HTTP status and message so callers can diagnose the failure.
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("roam api: status %d", e.Status)
	}
	return fmt.Sprintf("roam api: status %d: %s", e.Status, e.Message)
}

// Unwrap classifies every APIError as an upstream error.
func (e *APIError) Unwrap() error {
	return ErrUpstream
}

// Is reports whether any error in err's chain matches target.
// Convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// Convenience wrapper around errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}
