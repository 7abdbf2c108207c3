// Package order provides domain entities and business logic for purchase order
// tracking. It implements the Order aggregate root with lifecycle management,
// state transitions and an append-only audit history.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, status and history
//   - Status: A state machine that enforces valid order status transitions
//   - TrackingEvent: An immutable audit record appended on every transition
//
// Key business rules:
//   - Orders must have an externally assigned unique identifier and a customer
//   - Order status follows a fixed workflow:
//     CREATED -> PACKED -> SHIPPED -> DELIVERED, with CANCELLED reachable from
//     CREATED and PACKED; DELIVERED and CANCELLED are terminal
//   - History is append-only and never empty; its last entry always matches the
//     current status, and updatedAt always matches the last entry's occurredAt
//   - Status, updatedAt and history change together through TransitionTo only
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
