// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations: each command is a
// validated value object, each handler orchestrates the domain aggregate,
// the repository port and the event publisher port.
//
// All commands follow a consistent pattern: constructor validation, aggregate
// mutation, persistence, then a best-effort status-changed notification. A
// failed notification is logged and never undoes a successful save.
//
// Commands that depend on the current time take the instant explicitly so the
// state machine and the staleness threshold stay deterministic in tests.
package commands
