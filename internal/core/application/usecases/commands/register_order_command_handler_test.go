package commands_test

import (
	"errors"
	"testing"

	"ordertracking/internal/core/application/usecases/commands"
	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterOrderCommand("o-1001", "c-42", testInstant())

	repo := new(MockOrderRepository)
	publisher := new(MockOrderEventPublisher)
	mock.InOrder(
		repo.On("Get", ctx, "o-1001").Return(nil, errs.NewObjectNotFoundError("orderId", "o-1001")).Once(),
		repo.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		publisher.On("PublishStatusChanged", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
	)

	h := commands.NewRegisterOrderCommandHandler(repo, publisher, discardLogger())
	registered, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "o-1001", registered.ID())
	assert.Equal(t, "c-42", registered.CustomerID())
	assert.Equal(t, order.Created, registered.Status())
	assert.Len(t, registered.History(), 1)
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestRegisterOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterOrderCommand{} // not constructed properly

	h := commands.NewRegisterOrderCommandHandler(new(MockOrderRepository), new(MockOrderEventPublisher), discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestRegisterOrderCommandHandler_Handle_DuplicateOrderID(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterOrderCommand("o-1001", "c-42", testInstant())

	existing, err := order.NewOrder("o-1001", "c-7", testInstant())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, "o-1001").Return(existing, nil).Once()

	h := commands.NewRegisterOrderCommandHandler(repo, new(MockOrderEventPublisher), discardLogger())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	repo.AssertExpectations(t)
}

func TestRegisterOrderCommandHandler_Handle_GetError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterOrderCommand("o-1001", "c-42", testInstant())

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, "o-1001").Return(nil, errors.New("connection refused")).Once()

	h := commands.NewRegisterOrderCommandHandler(repo, new(MockOrderEventPublisher), discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
}

func TestRegisterOrderCommandHandler_Handle_SaveError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterOrderCommand("o-1001", "c-42", testInstant())

	repo := new(MockOrderRepository)
	mock.InOrder(
		repo.On("Get", ctx, "o-1001").Return(nil, errs.NewObjectNotFoundError("orderId", "o-1001")).Once(),
		repo.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("save error")).Once(),
	)

	h := commands.NewRegisterOrderCommandHandler(repo, new(MockOrderEventPublisher), discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
}

func TestRegisterOrderCommandHandler_Handle_PublishErrorDoesNotFail(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterOrderCommand("o-1001", "c-42", testInstant())

	repo := new(MockOrderRepository)
	publisher := new(MockOrderEventPublisher)
	mock.InOrder(
		repo.On("Get", ctx, "o-1001").Return(nil, errs.NewObjectNotFoundError("orderId", "o-1001")).Once(),
		repo.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		publisher.On("PublishStatusChanged", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("broker down")).Once(),
	)

	h := commands.NewRegisterOrderCommandHandler(repo, publisher, discardLogger())
	registered, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Created, registered.Status())
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}
