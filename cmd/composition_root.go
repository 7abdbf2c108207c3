package cmd

import (
	"log/slog"

	"ordertracking/internal/adapters/out/kafka"
	"ordertracking/internal/adapters/out/postgres/orderrepo"
	"ordertracking/internal/core/application/usecases/commands"
	"ordertracking/internal/core/application/usecases/queries"
	"ordertracking/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	orderRepository ports.OrderRepository
	eventPublisher  ports.OrderEventPublisher
	logger          *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		orderRepository: orderrepo.NewGormOrderRepository(gormDB),
		eventPublisher:  kafka.NewOrderEventPublisher(config.KafkaBrokers, config.KafkaOrderStatusTopic),
		logger:          logger,
	}
}

func (c *CompositionRoot) CreateRegisterOrderCommandHandler() commands.RegisterOrderCommandHandler {
	return commands.NewRegisterOrderCommandHandler(c.orderRepository, c.eventPublisher, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderRepository, c.eventPublisher, c.logger)
}

func (c *CompositionRoot) CreateCompleteStaleOrdersCommandHandler() commands.CompleteStaleOrdersCommandHandler {
	return commands.NewCompleteStaleOrdersCommandHandler(c.orderRepository, c.eventPublisher, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orderRepository)
}
