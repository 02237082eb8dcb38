package commands_test

import (
	"context"
	"errors"
	"testing"

	"retail/internal/core/application/usecases/commands"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/order"
	"retail/internal/core/ports"
	"retail/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStaffRepository struct{ mock.Mock }

func (m *MockStaffRepository) Exists(ctx context.Context, staffID int64) (bool, error) {
	args := m.Called(ctx, staffID)
	return args.Bool(0), args.Error(1)
}
func (m *MockStaffRepository) Link(ctx context.Context, staffID, orderID int64) error {
	args := m.Called(ctx, staffID, orderID)
	return args.Error(0)
}

type MockStaffOrderRepository struct{ mock.Mock }

func (m *MockStaffOrderRepository) NextID(_ context.Context) (int64, error) {
	return 0, errors.New("not implemented in mock")
}
func (m *MockStaffOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockStaffOrderRepository) Get(_ context.Context, _ int64) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockStaffOrderRepository) GetByReference(_ context.Context, _ kernel.Reference) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockStaffOrderRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockStaffOrderRepository) Delete(_ context.Context, _ int64) error {
	return errors.New("not implemented in mock")
}

type MockStaffUoW struct{ mock.Mock }

func (m *MockStaffUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStaffUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStaffUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStaffUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockStaffUoW) StaffRepository() ports.StaffRepository {
	args := m.Called()
	return args.Get(0).(ports.StaffRepository)
}

type MockStaffUoWFactory struct{ mock.Mock }

func (m *MockStaffUoWFactory) Create() commands.StaffUoW {
	args := m.Called()
	return args.Get(0).(commands.StaffUoW)
}

func TestNewLinkStaffCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewLinkStaffCommand(0, 3)
	require.ErrorIs(t, err, commands.ErrStaffIDIsInvalid)

	_, err = commands.NewLinkStaffCommand(2, 0)
	require.ErrorIs(t, err, commands.ErrOrderIDIsInvalid)
}

func TestLinkStaffCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewLinkStaffCommand(2, 3)
	require.NoError(t, err)

	staff := new(MockStaffRepository)
	orders := new(MockStaffOrderRepository)
	uow := new(MockStaffUoW)
	uow.On("StaffRepository").Return(staff)
	uow.On("OrderRepository").Return(orders)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		staff.On("Exists", ctx, int64(2)).Return(true, nil).Once(),
		orders.On("Exists", ctx, int64(3)).Return(true, nil).Once(),
		staff.On("Link", ctx, int64(2), int64(3)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStaffUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLinkStaffCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	staff.AssertExpectations(t)
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestLinkStaffCommandHandler_Handle_StaffNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewLinkStaffCommand(2, 3)
	require.NoError(t, err)

	staff := new(MockStaffRepository)
	orders := new(MockStaffOrderRepository)
	uow := new(MockStaffUoW)
	uow.On("StaffRepository").Return(staff)
	uow.On("OrderRepository").Return(orders)
	uow.On("Begin", ctx).Return(nil).Once()
	staff.On("Exists", ctx, int64(2)).Return(false, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockStaffUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLinkStaffCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	staff.AssertNotCalled(t, "Link", ctx, int64(2), int64(3))
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestLinkStaffCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewLinkStaffCommand(2, 3)
	require.NoError(t, err)

	staff := new(MockStaffRepository)
	orders := new(MockStaffOrderRepository)
	uow := new(MockStaffUoW)
	uow.On("StaffRepository").Return(staff)
	uow.On("OrderRepository").Return(orders)
	uow.On("Begin", ctx).Return(nil).Once()
	staff.On("Exists", ctx, int64(2)).Return(true, nil).Once()
	orders.On("Exists", ctx, int64(3)).Return(false, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockStaffUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLinkStaffCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	staff.AssertNotCalled(t, "Link", ctx, int64(2), int64(3))
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestLinkStaffCommandHandler_Handle_DuplicateLink(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewLinkStaffCommand(2, 3)
	require.NoError(t, err)

	staff := new(MockStaffRepository)
	orders := new(MockStaffOrderRepository)
	uow := new(MockStaffUoW)
	uow.On("StaffRepository").Return(staff)
	uow.On("OrderRepository").Return(orders)
	uow.On("Begin", ctx).Return(nil).Once()
	staff.On("Exists", ctx, int64(2)).Return(true, nil).Once()
	orders.On("Exists", ctx, int64(3)).Return(true, nil).Once()
	staff.On("Link", ctx, int64(2), int64(3)).
		Return(errs.NewObjectAlreadyExistsError("staffOrder", "2/3")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockStaffUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLinkStaffCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)

	uow.AssertNotCalled(t, "Commit", ctx)
}
