// Package cli provides the interactive roster command-line client.
//
// It wires configuration, the record store and relay clients, the roster
// core and a read–eval–print loop. Commands that reach the network run on
// their own goroutine so the prompt stays responsive; their outcome is
// printed as a notification when it arrives.
//
// The REPL is started via App.Run(ctx), which blocks until the operator
// exits and every in-flight operation has settled.
package cli
