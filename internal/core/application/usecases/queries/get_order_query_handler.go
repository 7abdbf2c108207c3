package queries

import (
	"context"

	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/core/ports"
)

// GetOrderQueryHandler resolves single-order lookups through the repository.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(repo)
//	query, _ := NewGetOrderQuery("o-1001")
//
//	aggregate, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("order lookup failed: %w", err)
//	}
type GetOrderQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(orderRepository ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orderRepository: orderRepository}
}

// Handle executes the lookup. A missing order surfaces as a not-found error.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orderRepository.Get(ctx, query.OrderID())
}
