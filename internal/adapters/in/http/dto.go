package http

import (
	"time"

	"ordertracking/internal/core/domain/model/order"
)

// RegisterOrderRequest is the body of POST /api/orders.
type RegisterOrderRequest struct {
	OrderID    string `json:"orderId"`
	CustomerID string `json:"customerId"`
}

// UpdateOrderStatusRequest is the body of PUT /api/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// TrackingEventResponse is one audit entry in an order response.
type TrackingEventResponse struct {
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
	Note       string    `json:"note,omitempty"`
}

// OrderResponse is the JSON shape of a tracked order, history included.
type OrderResponse struct {
	ID         string                  `json:"id"`
	CustomerID string                  `json:"customerId"`
	Status     string                  `json:"status"`
	CreatedAt  time.Time               `json:"createdAt"`
	UpdatedAt  time.Time               `json:"updatedAt"`
	History    []TrackingEventResponse `json:"history"`
}

// ErrorResponse is the JSON shape of every error reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func toOrderResponse(aggregate *order.Order) OrderResponse {
	history := aggregate.History()
	events := make([]TrackingEventResponse, len(history))
	for i, event := range history {
		events[i] = TrackingEventResponse{
			Status:     event.Status(),
			OccurredAt: event.OccurredAt(),
			Note:       event.Note(),
		}
	}

	return OrderResponse{
		ID:         aggregate.ID(),
		CustomerID: aggregate.CustomerID(),
		Status:     aggregate.Status().String(),
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
		History:    events,
	}
}

func toOrderResponses(aggregates []*order.Order) []OrderResponse {
	responses := make([]OrderResponse, len(aggregates))
	for i, aggregate := range aggregates {
		responses[i] = toOrderResponse(aggregate)
	}
	return responses
}
