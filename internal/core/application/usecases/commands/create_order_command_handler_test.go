package commands_test

import (
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	client := mustContact(t, "Guest 301", "chat:client", "Grand Hotel, room 301")
	vendor := mustContact(t, "Corner Store", "chat:vendor", "12 Palm Street")
	cmd, _ := commands.NewCreateOrderCommand(order.Delivery, 7, 5, client, vendor)

	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	repo := new(MockOrderRepository)

	isNewOrder := mock.MatchedBy(func(o *order.Order) bool {
		return o.ID() == 7 && o.Status() == order.Pending && o.DriverID() == nil && o.CreatedAt().Equal(createdAt)
	})

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, isNewOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateOrderCommandHandler(factory, fixedClock(createdAt))
	o, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NoError(t, o.AccessCode().Validate())
	assert.True(t, o.AccessCodeValidAt(createdAt.Add(order.AccessCodeTTL)))
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	client := mustContact(t, "Guest 301", "chat:client", "Grand Hotel, room 301")
	cmd, _ := commands.NewCreateOrderCommand(order.Service, 7, 5, client, client)
	addErr := errors.New("duplicate key")

	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	repo := new(MockOrderRepository)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Add", ctx, mock.Anything).Return(addErr).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, fixedClock(createdAt))
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, addErr)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(factory, nil)

	_, err := handler.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
