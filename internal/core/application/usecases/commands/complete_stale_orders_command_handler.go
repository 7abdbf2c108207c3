package commands

import (
	"context"
	"log/slog"

	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/core/ports"
)

const staleCompletionNote = "Auto-complete by batch job"

// CompleteStaleOrdersCommandHandler sweeps shipped orders whose last update is
// older than the staleness threshold and marks them delivered. Each order is
// processed independently so one bad record never aborts the batch.
type CompleteStaleOrdersCommandHandler struct {
	orderRepository ports.OrderRepository
	eventPublisher  ports.OrderEventPublisher
	logger          *slog.Logger
}

// NewCompleteStaleOrdersCommandHandler creates a handler for the batch sweep.
func NewCompleteStaleOrdersCommandHandler(
	orderRepository ports.OrderRepository,
	eventPublisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CompleteStaleOrdersCommandHandler {
	return CompleteStaleOrdersCommandHandler{
		orderRepository: orderRepository,
		eventPublisher:  eventPublisher,
		logger:          logger,
	}
}

// Handle processes the batch completion command.
// Fetches the stale-shipped snapshot once, then transitions and saves each
// order in turn. Failures are logged per order and the sweep continues; the
// returned count covers only orders that were actually persisted.
func (h CompleteStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CompleteStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	staleOrders, err := h.orderRepository.FindStaleShipped(ctx, cmd.Threshold())
	if err != nil {
		return 0, err
	}

	completed := 0
	for _, aggregate := range staleOrders {
		if err := aggregate.TransitionTo(order.Delivered, cmd.Now(), staleCompletionNote); err != nil {
			h.logger.Error("failed to auto-complete stale order",
				slog.String("orderId", aggregate.ID()),
				slog.Any("error", err))
			continue
		}

		if err := h.orderRepository.Save(ctx, aggregate); err != nil {
			h.logger.Error("failed to save auto-completed order",
				slog.String("orderId", aggregate.ID()),
				slog.Any("error", err))
			continue
		}

		completed++

		if err := h.eventPublisher.PublishStatusChanged(ctx, aggregate); err != nil {
			h.logger.Error("failed to publish status change",
				slog.String("orderId", aggregate.ID()),
				slog.String("status", aggregate.Status().String()),
				slog.Any("error", err))
		}
	}

	return completed, nil
}
