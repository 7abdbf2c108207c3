package order

import (
	"time"

	"ordertracking/internal/pkg/errs"
)

// TrackingEvent is an immutable audit record of a single status change.
// It snapshots the status as a string at the moment the change happened and is
// owned exclusively by the Order that produced it.
type TrackingEvent struct {
	orderID    string
	status     string
	occurredAt time.Time
	note       string
}

// NewTrackingEvent creates a tracking event for the given order and status.
// The note is caller-supplied and may be empty.
func NewTrackingEvent(orderID string, status string, occurredAt time.Time, note string) (TrackingEvent, error) {
	if orderID == "" {
		return TrackingEvent{}, errs.NewValueIsRequiredError("orderId")
	}
	if status == "" {
		return TrackingEvent{}, errs.NewValueIsRequiredError("status")
	}

	return TrackingEvent{
		orderID:    orderID,
		status:     status,
		occurredAt: occurredAt,
		note:       note,
	}, nil
}

// OrderID returns the identifier of the order the event belongs to.
func (e TrackingEvent) OrderID() string {
	return e.orderID
}

// Status returns the status snapshot recorded by the event.
func (e TrackingEvent) Status() string {
	return e.status
}

// OccurredAt returns the instant the status change happened.
func (e TrackingEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// Note returns the free-text note recorded with the event.
func (e TrackingEvent) Note() string {
	return e.note
}
