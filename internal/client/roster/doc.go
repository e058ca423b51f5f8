// Package roster is the operator client's core: it owns the local mirror of
// the employee collection, the edit session, and the per-employee email
// dispatch state, and reports every outcome through a Notifier.
//
// Remote calls are made through the Store and Relay interfaces. Each
// operation marks itself busy before the call and clears the mark on every
// exit path (see Op), so callers can poll Loading, Submitting and
// Dispatcher.State().InFlight to decide which actions to offer.
//
// After a successful mutation the mirror is replaced by a full re-list,
// never patched locally. When refreshes overlap, the last one to complete
// wins.
package roster
