package ports

import (
	"context"
	"time"

	"ordertracking/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The backing store is treated as a generic document store with upsert
// semantics by order id; atomicity of a single Save is the store's concern.
type OrderRepository interface {
	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no order exists for the id.
	Get(ctx context.Context, id string) (*order.Order, error)

	// Save persists the aggregate with upsert semantics by id.
	// History entries are append-only; existing entries are never rewritten.
	Save(ctx context.Context, aggregate *order.Order) error

	// FindStaleShipped retrieves all orders in SHIPPED status whose last
	// update happened strictly before the given instant.
	FindStaleShipped(ctx context.Context, before time.Time) ([]*order.Order, error)

	// FindByQuery retrieves the page of orders matching the normalized search
	// query, ordered per its sort field and direction.
	FindByQuery(ctx context.Context, query OrderSearchQuery) ([]*order.Order, error)
}
