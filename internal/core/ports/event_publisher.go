package ports

import (
	"context"

	"ordertracking/internal/core/domain/model/order"
)

// OrderEventPublisher defines the notification contract for status changes.
// Publication is fire-and-forget: callers log a failed publish but never roll
// back the save that preceded it.
type OrderEventPublisher interface {
	// PublishStatusChanged emits a status-changed notification for the order's
	// current state.
	PublishStatusChanged(ctx context.Context, aggregate *order.Order) error
}
