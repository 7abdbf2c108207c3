package order

import (
	"errors"
	"fmt"
	"time"

	"ordertracking/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// creationNote is the history note recorded for the initial CREATED entry.
const creationNote = "Order created"

// Order represents a tracked purchase order. It is the aggregate root that
// manages the order lifecycle from registration through delivery or
// cancellation.
//
// Order follows these invariants:
//   - Must have a non-blank, externally assigned identifier and customer id
//   - Status transitions follow the fixed transition table
//   - History is append-only and never empty after creation
//   - The last history entry's status always equals the order's status
//   - updatedAt always equals the occurredAt of the last history entry
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation; status,
// updatedAt and history change together through TransitionTo only.
type Order struct {
	// id is the externally assigned unique identifier for the order
	id string

	// customerID identifies the customer the order belongs to
	customerID string

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is the registration instant, immutable after creation
	createdAt time.Time

	// updatedAt is the instant of the last transition
	updatedAt time.Time

	// history is the append-only audit trail, insertion order = chronological order
	history []TrackingEvent

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in CREATED status with a single history entry.
// This is the only way to create a fresh order, ensuring the creation
// invariants hold: createdAt = updatedAt = now and history records the
// creation transition.
//
// Parameters:
//   - id: Externally assigned unique identifier (must be non-blank)
//   - customerID: Identifier of the owning customer (must be non-blank)
//   - now: The creation instant, supplied by the caller for deterministic testing
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(id string, customerID string, now time.Time) (*Order, error) {
	order := &Order{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	created, err := NewTrackingEvent(order.id, Created.String(), now, creationNote)
	if err != nil {
		return nil, err
	}

	order.createdAt = now
	order.updatedAt = now
	order.history = []TrackingEvent{created}
	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state.
// Used by repository adapters when rehydrating aggregates; validates that the
// persisted state still satisfies the aggregate invariants.
func RestoreOrder(
	id string,
	customerID string,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
	history []TrackingEvent,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if len(history) == 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"history",
			fmt.Errorf("order %s has no tracking events", id),
		)
	}

	order.status = status
	order.createdAt = createdAt
	order.updatedAt = updatedAt
	order.history = make([]TrackingEvent, len(history))
	copy(order.history, history)
	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's unique identifier.
func (o *Order) ID() string {
	return o.id
}

// CustomerID returns the identifier of the owning customer.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the registration instant.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the instant of the last transition.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// History returns a copy of the audit trail in chronological order.
// Callers cannot mutate the order's internal history through the returned slice.
func (o *Order) History() []TrackingEvent {
	history := make([]TrackingEvent, len(o.history))
	copy(history, o.history)
	return history
}

// TransitionTo moves the order to target, records the transition instant and
// appends a history entry, all as one mutation. The transition is checked
// against the fixed transition table first; on failure the order is left
// completely unchanged.
//
// Parameters:
//   - target: The status to move to
//   - at: The transition instant, supplied by the caller
//   - note: Free-text note recorded in the history entry
//
// Returns:
//   - nil on success
//   - a business-rule-violation error naming the current->target pair if the
//     transition table does not permit the move
func (o *Order) TransitionTo(target Status, at time.Time, note string) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if !o.status.CanTransitionTo(target) {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("invalid transition from %s to %s", o.status, target),
		)
	}

	event, err := NewTrackingEvent(o.id, target.String(), at, note)
	if err != nil {
		return err
	}

	o.status = target
	o.updatedAt = at
	o.history = append(o.history, event)
	return nil
}

func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	o.customerID = customerID
	return nil
}
