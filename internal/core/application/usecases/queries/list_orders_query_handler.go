package queries

import (
	"context"

	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/core/ports"
)

// ListOrdersQueryHandler resolves paged order searches through the repository.
// The page is returned without a total count; callers page forward until an
// empty page comes back.
type ListOrdersQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewListOrdersQueryHandler creates a handler for paged order searches.
func NewListOrdersQueryHandler(orderRepository ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orderRepository: orderRepository}
}

// Handle executes the search and returns the matching page of orders.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orderRepository.FindByQuery(ctx, query.Search())
}
