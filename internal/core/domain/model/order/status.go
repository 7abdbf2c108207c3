package order

import (
	"fmt"
	"strings"

	"ordertracking/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	CREATED ──> PACKED ──> SHIPPED ──> DELIVERED
//	   │           │
//	   └───────────┴─────> CANCELLED
//
// DELIVERED and CANCELLED are terminal states with no outgoing transitions.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first registered.
	Created

	// Packed indicates the order has been packed and awaits shipping.
	Packed

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Delivered indicates the order reached the customer.
	// This is a terminal state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was cancelled before shipping.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Created:   "CREATED",
		Packed:    "PACKED",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "CREATED",
		Packed:    "PACKED",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// getAllowedTransitions returns the fixed transition table as data.
// The rule set is closed: states absent from a value set cannot be reached
// from that key, and terminal states map to an empty set.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Created:   {Packed, Cancelled},
		Packed:    {Shipped, Cancelled},
		Shipped:   {Delivered},
		Delivered: {},
		Cancelled: {},
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, Packed, Shipped, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status, e.g. "CREATED".
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StatusFromString parses a status from its wire representation.
// Input is trimmed and uppercased first, so "shipped" and " SHIPPED " both
// parse to Shipped. Unrecognized values fail with a validation error.
func StatusFromString(raw string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	for status, str := range getValidStatusStrings() {
		if str == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a recognized status", raw),
	)
}

// CanTransitionTo reports whether the transition table permits moving from the
// current status to target. Self-loops and edges out of terminal states are
// never permitted.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	if s.Validate() != nil {
		return false
	}
	return len(getAllowedTransitions()[s]) == 0
}
