// Package http exposes the order tracking operations over a JSON REST API.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"ordertracking/internal/core/application/usecases/commands"
	"ordertracking/internal/core/application/usecases/queries"
	"ordertracking/internal/core/ports"
	"ordertracking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	registerOrderHandler     commands.RegisterOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	getOrderHandler          queries.GetOrderQueryHandler
	listOrdersHandler        queries.ListOrdersQueryHandler

	now func() time.Time
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	registerOrderHandler commands.RegisterOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
) *Server {
	return &Server{
		registerOrderHandler:     registerOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		getOrderHandler:          getOrderHandler,
		listOrdersHandler:        listOrdersHandler,
		now:                      func() time.Time { return time.Now().UTC() },
	}
}

// RegisterRoutes attaches the API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/orders", s.RegisterOrder)
	e.GET("/api/orders", s.ListOrders)
	e.GET("/api/orders/:id", s.GetOrder)
	e.PUT("/api/orders/:id/status", s.UpdateOrderStatus)
	e.GET("/health", s.Health)
}

// RegisterOrder handles POST /api/orders - registers a new order for tracking.
func (s *Server) RegisterOrder(ctx echo.Context) error {
	var request RegisterOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewRegisterOrderCommand(request.OrderID, request.CustomerID, s.now())
	if err != nil {
		return s.writeError(ctx, err)
	}

	registered, err := s.registerOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(registered))
}

// GetOrder handles GET /api/orders/:id - returns one order with its history.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	aggregate, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(aggregate))
}

// UpdateOrderStatus handles PUT /api/orders/:id/status - advances the lifecycle.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var request UpdateOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(ctx.Param("id"), request.Status, request.Note, s.now())
	if err != nil {
		return s.writeError(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// ListOrders handles GET /api/orders - returns a filtered, sorted page.
func (s *Server) ListOrders(ctx echo.Context) error {
	search, err := ports.NewOrderSearchQuery(
		ctx.QueryParam("orderIdContains"),
		ctx.QueryParam("customerIdContains"),
		ctx.QueryParam("status"),
		ctx.QueryParam("updatedFrom"),
		ctx.QueryParam("updatedTo"),
		queryInt(ctx, "page"),
		queryInt(ctx, "size"),
		ctx.QueryParam("sortBy"),
		ctx.QueryParam("sortDir"),
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewListOrdersQuery(search)
	if err != nil {
		return s.writeError(ctx, err)
	}

	page, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(page))
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// writeError maps the error taxonomy onto HTTP status codes. Classification
// goes through errors.Is only, so wrapped errors map the same as bare ones.
func (s *Server) writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists), errors.Is(err, errs.ErrBusinessRuleViolation):
		code = http.StatusConflict
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

// queryInt reads an integer query parameter; absent or malformed values come
// back as zero and are normalized downstream.
func queryInt(ctx echo.Context, name string) int {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}
