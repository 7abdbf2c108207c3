package commands

import (
	"context"
	"errors"
	"log/slog"

	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/core/ports"
	"ordertracking/internal/pkg/errs"
)

// RegisterOrderCommandHandler handles the business logic for order registration.
// Creates new orders in "CREATED" status with their first history entry and
// emits a best-effort status-changed notification.
type RegisterOrderCommandHandler struct {
	orderRepository ports.OrderRepository
	eventPublisher  ports.OrderEventPublisher
	logger          *slog.Logger
}

// NewRegisterOrderCommandHandler creates a handler for order registration.
func NewRegisterOrderCommandHandler(
	orderRepository ports.OrderRepository,
	eventPublisher ports.OrderEventPublisher,
	logger *slog.Logger,
) RegisterOrderCommandHandler {
	return RegisterOrderCommandHandler{
		orderRepository: orderRepository,
		eventPublisher:  eventPublisher,
		logger:          logger,
	}
}

// Handle processes the registration command.
// Rejects duplicate order ids with an already-exists error, persists the new
// aggregate, then publishes the notification. A failed publish is logged and
// does not fail the registration.
func (h RegisterOrderCommandHandler) Handle(ctx context.Context, cmd RegisterOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	existing, err := h.orderRepository.Get(ctx, cmd.OrderID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewObjectAlreadyExistsError("orderId", cmd.OrderID())
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.Now())
	if err != nil {
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
