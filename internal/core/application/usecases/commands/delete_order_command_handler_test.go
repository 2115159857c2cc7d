package commands_test

import (
	"errors"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Delete", ctx, orderID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory, testLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Delete", ctx, orderID).
			Return(errs.NewObjectNotFoundError("order", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory, testLogger())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestDeleteOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	require.NoError(t, err)

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewDeleteOrderCommandHandler(factory, testLogger())
	require.Error(t, h.Handle(ctx, cmd))
}

func TestDeleteOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.DeleteOrderCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	h := commands.NewDeleteOrderCommandHandler(factory, testLogger())
	require.Error(t, h.Handle(ctx, cmd))
	factory.AssertNotCalled(t, "Create")
}
