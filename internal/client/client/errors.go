package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable = errors.New("server unavailable")
	ErrRelayFailed = errors.New("relay request failed")
)

// StoreError is returned by every StoreClient method on failure.
type StoreError struct {
	Op      string
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	return e.Message
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// RelayError is returned by RelayClient.Send on failure. StatusCode is zero
// when no HTTP response was received.
type RelayError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RelayError) Error() string {
	return e.Message
}

func (e *RelayError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrRelayFailed
}

func statusMessage(code int) string {
	return fmt.Sprintf("request failed with status code %d", code)
}
