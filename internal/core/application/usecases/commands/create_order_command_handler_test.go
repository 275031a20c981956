package commands_test

import (
	"testing"

	"cargotrack/internal/core/application/usecases/commands"
	"cargotrack/internal/core/domain/model/employee"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := adminActor(t)

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, "lp00123456cn", nil, nil, actor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	historyRepo := new(MockOrderHistoryRepository)
	auditRepo := new(MockAuditLogRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("OrderHistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Append", ctx, mock.AnythingOfType("order.HistoryEntry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("AuditLogRepository").Return(auditRepo).Once(),
		auditRepo.On("Append", ctx, mock.AnythingOfType("audit.Entry")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, testLogger())
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Created, created.Status())
	assert.Equal(t, 1, created.Version())
	assert.Equal(t, "LP00123456CN", created.TrackNumber().String())
	orderRepo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(factory, testLogger())
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_DuplicateTrackNumber(t *testing.T) {
	ctx := t.Context()
	actor := adminActor(t)

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "LP00123456CN", nil, nil, actor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Return(order.ErrDuplicateTrackNumber).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, testLogger())
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrDuplicateTrackNumber)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateOrderCommandHandler_Handle_BranchWorkerGetsOwnBranch(t *testing.T) {
	ctx := t.Context()
	branchID := kernel.NewUUID()
	actor, err := employee.NewActor(kernel.NewUUID(), employee.BranchWorker, &branchID)
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "LP00123456CN", &branchID, nil, actor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	historyRepo := new(MockOrderHistoryRepository)
	auditRepo := new(MockAuditLogRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("OrderHistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Append", ctx, mock.AnythingOfType("order.HistoryEntry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("AuditLogRepository").Return(auditRepo).Once(),
		auditRepo.On("Append", ctx, mock.AnythingOfType("audit.Entry")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, testLogger())
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created.BranchID())
	assert.True(t, created.BranchID().IsEqual(branchID))
	require.NotNil(t, created.CreatedBy())
	assert.True(t, created.CreatedBy().IsEqual(actor.ID()))
}
