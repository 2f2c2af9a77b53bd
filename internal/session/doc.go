// Package session holds the interactive state of a wrapped session: the
// current mode, the dataset on display and the import counters.
//
// A Session starts in Memory Mode with the built-in dataset. Importing a
// document or loading the demo switches it to Data Mode with a computed
// dataset; a failed import leaves the previous state in place. Every state
// change can be reported to a Notifier as a short user-facing message.
package session
