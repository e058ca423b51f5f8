// Package common defines shared constants and sentinel errors used across
// the store server, the relay and the operator client. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")

	// ErrorValidation marks input rejected before any remote call is made.
	ErrorValidation = errors.New("validation error")

	// Relay errors.
	ErrorWebhookFailed = errors.New("webhook failed")
)
