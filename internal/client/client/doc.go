// Package client holds the operator client's two remote leaves.
//
// # Record store
//
// StoreClient is the gRPC client for the roster.RecordStore service. Every
// failure comes back as a *StoreError whose Error() is the store's
// human-readable message; errors.Is works against common.ErrorNotFound,
// common.ErrorValidation and ErrUnavailable.
//
// # Email relay
//
// RelayClient posts one notification payload to the relay endpoint. A call
// is a single attempt bounded by the configured timeout; failures come back
// as a *RelayError carrying the relay's diagnostic text.
package client
