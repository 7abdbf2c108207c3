package commands

import (
	"context"
	"log/slog"

	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles the business logic for status
// transitions. The aggregate enforces the state machine; the handler loads,
// mutates, persists and notifies.
type UpdateOrderStatusCommandHandler struct {
	orderRepository ports.OrderRepository
	eventPublisher  ports.OrderEventPublisher
	logger          *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateOrderStatusCommandHandler(
	orderRepository ports.OrderRepository,
	eventPublisher ports.OrderEventPublisher,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		orderRepository: orderRepository,
		eventPublisher:  eventPublisher,
		logger:          logger,
	}
}

// Handle processes the status update command.
// Loads the order, applies the transition through the aggregate and persists
// the new state together with the appended history entry. A forbidden
// transition surfaces as a business rule violation and leaves the order
// untouched. A failed publish is logged and does not fail the update.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.orderRepository.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.TransitionTo(cmd.Target(), cmd.At(), cmd.Note()); err != nil {
		return nil, err
	}

	if err = h.orderRepository.Save(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = h.eventPublisher.PublishStatusChanged(ctx, aggregate); err != nil {
		h.logger.Error("failed to publish status change",
			slog.String("orderId", aggregate.ID()),
			slog.String("status", aggregate.Status().String()),
			slog.Any("error", err))
	}

	return aggregate, nil
}
