package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	adapter "ordertracking/internal/adapters/in/http"
	"ordertracking/internal/core/application/usecases/commands"
	"ordertracking/internal/core/application/usecases/queries"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/core/ports"
	"ordertracking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) FindStaleShipped(ctx context.Context, before time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByQuery(ctx context.Context, query ports.OrderSearchQuery) ([]*order.Order, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) PublishStatusChanged(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func testInstant() time.Time {
	return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
}

func newTestServer(repo *MockOrderRepository, publisher *MockOrderEventPublisher) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	server := adapter.NewServer(
		commands.NewRegisterOrderCommandHandler(repo, publisher, logger),
		commands.NewUpdateOrderStatusCommandHandler(repo, publisher, logger),
		queries.NewGetOrderQueryHandler(repo),
		queries.NewListOrdersQueryHandler(repo),
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestServer_RegisterOrder_Success(t *testing.T) {
	repo := new(MockOrderRepository)
	publisher := new(MockOrderEventPublisher)
	repo.On("Get", mock.Anything, "o-1001").Return(nil, errs.NewObjectNotFoundError("orderId", "o-1001")).Once()
	repo.On("Save", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	publisher.On("PublishStatusChanged", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	e := newTestServer(repo, publisher)
	rec := doJSON(e, http.MethodPost, "/api/orders", `{"orderId":"o-1001","customerId":"c-42"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var response adapter.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "o-1001", response.ID)
	assert.Equal(t, "c-42", response.CustomerID)
	assert.Equal(t, "CREATED", response.Status)
	require.Len(t, response.History, 1)
	assert.Equal(t, "CREATED", response.History[0].Status)
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestServer_RegisterOrder_BlankOrderID_BadRequest(t *testing.T) {
	e := newTestServer(new(MockOrderRepository), new(MockOrderEventPublisher))
	rec := doJSON(e, http.MethodPost, "/api/orders", `{"orderId":"  ","customerId":"c-42"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_RegisterOrder_Duplicate_Conflict(t *testing.T) {
	existing, err := order.NewOrder("o-1001", "c-7", testInstant())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, "o-1001").Return(existing, nil).Once()

	e := newTestServer(repo, new(MockOrderEventPublisher))
	rec := doJSON(e, http.MethodPost, "/api/orders", `{"orderId":"o-1001","customerId":"c-42"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	repo.AssertExpectations(t)
}

func TestServer_GetOrder_Success(t *testing.T) {
	aggregate, err := order.NewOrder("o-1001", "c-42", testInstant())
	require.NoError(t, err)
	require.NoError(t, aggregate.TransitionTo(order.Packed, testInstant().Add(time.Hour), "Packed"))

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, "o-1001").Return(aggregate, nil).Once()

	e := newTestServer(repo, new(MockOrderEventPublisher))
	rec := doJSON(e, http.MethodGet, "/api/orders/o-1001", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var response adapter.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "PACKED", response.Status)
	require.Len(t, response.History, 2)
	assert.Equal(t, "CREATED", response.History[0].Status)
	assert.Equal(t, "PACKED", response.History[1].Status)
	repo.AssertExpectations(t)
}

func TestServer_GetOrder_Missing_NotFound(t *testing.T) {
	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, "o-missing").Return(nil, errs.NewObjectNotFoundError("orderId", "o-missing")).Once()

	e := newTestServer(repo, new(MockOrderEventPublisher))
	rec := doJSON(e, http.MethodGet, "/api/orders/o-missing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	repo.AssertExpectations(t)
}

func TestServer_UpdateOrderStatus_Success(t *testing.T) {
	aggregate, err := order.NewOrder("o-1001", "c-42", testInstant())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	publisher := new(MockOrderEventPublisher)
	repo.On("Get", mock.Anything, "o-1001").Return(aggregate, nil).Once()
	repo.On("Save", mock.Anything, aggregate).Return(nil).Once()
	publisher.On("PublishStatusChanged", mock.Anything, aggregate).Return(nil).Once()

	e := newTestServer(repo, publisher)
	rec := doJSON(e, http.MethodPut, "/api/orders/o-1001/status", `{"status":"packed","note":"Packed at warehouse 3"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var response adapter.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "PACKED", response.Status)
	require.Len(t, response.History, 2)
	assert.Equal(t, "Packed at warehouse 3", response.History[1].Note)
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestServer_UpdateOrderStatus_ForbiddenTransition_Conflict(t *testing.T) {
	aggregate, err := order.NewOrder("o-1001", "c-42", testInstant())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, "o-1001").Return(aggregate, nil).Once()

	e := newTestServer(repo, new(MockOrderEventPublisher))
	rec := doJSON(e, http.MethodPut, "/api/orders/o-1001/status", `{"status":"DELIVERED","note":"skip ahead"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	repo.AssertExpectations(t)
}

func TestServer_UpdateOrderStatus_UnknownStatus_BadRequest(t *testing.T) {
	e := newTestServer(new(MockOrderRepository), new(MockOrderEventPublisher))
	rec := doJSON(e, http.MethodPut, "/api/orders/o-1001/status", `{"status":"IN_TRANSIT","note":"n"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_ListOrders_Success(t *testing.T) {
	first, err := order.NewOrder("o-1", "c-1", testInstant())
	require.NoError(t, err)
	second, err := order.NewOrder("o-2", "c-2", testInstant())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("FindByQuery", mock.Anything, mock.AnythingOfType("ports.OrderSearchQuery")).
		Return([]*order.Order{first, second}, nil).Once()

	e := newTestServer(repo, new(MockOrderEventPublisher))
	rec := doJSON(e, http.MethodGet, "/api/orders?status=created&size=10", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var response []adapter.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response, 2)
	assert.Equal(t, "o-1", response[0].ID)
	repo.AssertExpectations(t)
}

func TestServer_ListOrders_InvalidStatus_BadRequest(t *testing.T) {
	e := newTestServer(new(MockOrderRepository), new(MockOrderEventPublisher))
	rec := doJSON(e, http.MethodGet, "/api/orders?status=IN_TRANSIT", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Health(t *testing.T) {
	e := newTestServer(new(MockOrderRepository), new(MockOrderEventPublisher))
	rec := doJSON(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
