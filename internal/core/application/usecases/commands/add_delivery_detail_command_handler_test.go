package commands_test

import (
	"testing"

	"retail/internal/core/application/usecases/commands"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/order"
	"retail/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeliveryDetail(t *testing.T) order.DeliveryDetail {
	t.Helper()
	date, err := kernel.ParseDate("12-oct-23")
	require.NoError(t, err)
	detail, err := order.NewDeliveryDetail("June", "Bell", "14", "High Street", "Leeds", date)
	require.NoError(t, err)
	return detail
}

func TestNewAddDeliveryDetailCommand_InvalidInput(t *testing.T) {
	detail := newDeliveryDetail(t)

	_, err := commands.NewAddDeliveryDetailCommand(0, detail)
	require.ErrorIs(t, err, commands.ErrOrderIDIsInvalid)

	_, err = commands.NewAddDeliveryDetailCommand(3, order.DeliveryDetail{})
	require.Error(t, err)
}

func TestAddDeliveryDetailCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	detail := newDeliveryDetail(t)
	cmd, err := commands.NewAddDeliveryDetailCommand(4, detail)
	require.NoError(t, err)

	details := new(MockDetailRepository)
	orders := new(MockDetailOrderRepository)
	uow := new(MockDetailUoW)
	uow.On("OrderRepository").Return(orders)
	uow.On("DetailRepository").Return(details)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orders.On("Get", ctx, int64(4)).Return(restoreDetailOrder(t, 4, order.Delivery), nil).Once(),
		details.On("AddDelivery", ctx, int64(4), detail).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDetailUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddDeliveryDetailCommandHandler(factory, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	details.AssertExpectations(t)
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddDeliveryDetailCommandHandler_Handle_DuplicateDetail(t *testing.T) {
	ctx := t.Context()
	detail := newDeliveryDetail(t)
	cmd, err := commands.NewAddDeliveryDetailCommand(4, detail)
	require.NoError(t, err)

	details := new(MockDetailRepository)
	orders := new(MockDetailOrderRepository)
	uow := new(MockDetailUoW)
	uow.On("OrderRepository").Return(orders)
	uow.On("DetailRepository").Return(details)
	uow.On("Begin", ctx).Return(nil).Once()
	orders.On("Get", ctx, int64(4)).Return(restoreDetailOrder(t, 4, order.Delivery), nil).Once()
	details.On("AddDelivery", ctx, int64(4), detail).
		Return(errs.NewObjectAlreadyExistsError("deliveryDetail", "4")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDetailUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddDeliveryDetailCommandHandler(factory, discardLogger())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)

	uow.AssertNotCalled(t, "Commit", ctx)
}
