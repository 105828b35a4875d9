package domain

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrMobilizationNotFound = errors.New("mobilization request not found")
)

var (
	ErrEventFull              = errors.New("event has no free donor spots")
	ErrMobilizationNotOffered = errors.New("mobilization is not in offered state")
)

var (
	ErrUnauthenticated = errors.New("authentication required")
)

var (
	ErrValidation = errors.New("validation error")

	// ErrServiceUnavailable marks a transient failure of an external
	// capability; it is surfaced, never retried by this service.
	ErrServiceUnavailable = errors.New("external service unavailable")
)
