package commands_test

import (
	"testing"

	"flowershop/internal/core/application/usecases/commands"
	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/core/domain/model/order"
	"flowershop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSoftDeleteOrderCommandHandler_Handle_CancelledOrder(t *testing.T) {
	ctx := t.Context()
	existing := restoredOrder(t, order.Cancelled)
	cmd, err := commands.NewSoftDeleteOrderCommand(existing.ID(), false)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		repo.On("SoftDelete", mock.Anything, existing.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSoftDeleteOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSoftDeleteOrderCommandHandler_Handle_ActiveOrderRejected(t *testing.T) {
	ctx := t.Context()
	existing := restoredOrder(t, order.Preparing)
	cmd, err := commands.NewSoftDeleteOrderCommand(existing.ID(), false)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSoftDeleteOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	var deleteErr *order.DeleteStateError
	require.ErrorAs(t, err, &deleteErr)
	require.Equal(t, order.Preparing, deleteErr.Status)
	repo.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
}

func TestSoftDeleteOrderCommandHandler_Handle_IgnoreStateOverride(t *testing.T) {
	ctx := t.Context()
	existing := restoredOrder(t, order.Preparing)
	cmd, err := commands.NewSoftDeleteOrderCommand(existing.ID(), true)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		repo.On("SoftDelete", mock.Anything, existing.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSoftDeleteOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
}

func TestSoftDeleteOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewSoftDeleteOrderCommand(id, false)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("orderID", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSoftDeleteOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestSoftDeleteOrderCommandHandler_Handle_NotConstructed(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderUoWFactory)
	h := commands.NewSoftDeleteOrderCommandHandler(factory)
	err := h.Handle(ctx, commands.SoftDeleteOrderCommand{})
	require.ErrorIs(t, err, commands.ErrSoftDeleteOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewSoftDeleteOrderCommand_InvalidID(t *testing.T) {
	_, err := commands.NewSoftDeleteOrderCommand(kernel.UUID{}, false)
	require.Error(t, err)
}
