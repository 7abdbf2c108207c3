// Package queries contains read operations that never modify system state.
// Implements the Query pattern: each query is a validated value object, each
// handler resolves it through the repository port and returns domain
// aggregates for the transport layer to shape.
//
// Queries are stateless between calls and safe for concurrent use.
package queries
