package commands_test

import (
	"context"
	"errors"
	"testing"

	"retail/internal/core/application/usecases/commands"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/order"
	"retail/internal/core/domain/model/product"
	"retail/internal/core/ports"
	"retail/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStockOrderRepository struct{ mock.Mock }

func (m *MockStockOrderRepository) NextID(_ context.Context) (int64, error) {
	return 0, errors.New("not implemented in mock")
}
func (m *MockStockOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockStockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockStockOrderRepository) GetByReference(_ context.Context, _ kernel.Reference) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockStockOrderRepository) Exists(_ context.Context, _ int64) (bool, error) {
	return false, errors.New("not implemented in mock")
}
func (m *MockStockOrderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStockLineRepository struct{ mock.Mock }

func (m *MockStockLineRepository) Add(ctx context.Context, orderID, productID int64, quantity int) error {
	args := m.Called(ctx, orderID, productID, quantity)
	return args.Error(0)
}
func (m *MockStockLineRepository) OfOrder(ctx context.Context, orderID int64) (map[int64]int, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int), args.Error(1)
}
func (m *MockStockLineRepository) Exists(_ context.Context, _, _ int64) (bool, error) {
	return false, errors.New("not implemented in mock")
}
func (m *MockStockLineRepository) Delete(_ context.Context, _, _ int64) error {
	return errors.New("not implemented in mock")
}

type MockStockProductRepository struct{ mock.Mock }

func (m *MockStockProductRepository) Exists(_ context.Context, _ int64) (bool, error) {
	return false, errors.New("not implemented in mock")
}
func (m *MockStockProductRepository) Get(_ context.Context, _ int64) (*product.Product, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockStockProductRepository) GetForUpdate(ctx context.Context, id int64) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}
func (m *MockStockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockStockUoW struct{ mock.Mock }

func (m *MockStockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockStockUoW) OrderLineRepository() ports.OrderLineRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderLineRepository)
}
func (m *MockStockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockStockUoWFactory struct{ mock.Mock }

func (m *MockStockUoWFactory) Create() commands.StockUoW {
	args := m.Called()
	return args.Get(0).(commands.StockUoW)
}

func restoreTestOrder(t *testing.T, id int64) *order.Order {
	t.Helper()
	placedAt, err := kernel.ParseDate("3-jan-21")
	require.NoError(t, err)
	o, err := order.RestoreOrder(id, kernel.NewReference(), order.Collection, false, placedAt)
	require.NoError(t, err)
	return o
}

func restoreTestProduct(t *testing.T, id int64, stock int) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(id, "Pencil", 0.5, stock)
	require.NoError(t, err)
	return p
}

type stockMocks struct {
	orders   *MockStockOrderRepository
	lines    *MockStockLineRepository
	products *MockStockProductRepository
	uow      *MockStockUoW
	factory  *MockStockUoWFactory
}

func newStockMocks() stockMocks {
	m := stockMocks{
		orders:   new(MockStockOrderRepository),
		lines:    new(MockStockLineRepository),
		products: new(MockStockProductRepository),
		uow:      new(MockStockUoW),
		factory:  new(MockStockUoWFactory),
	}
	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("OrderRepository").Return(m.orders)
	m.uow.On("OrderLineRepository").Return(m.lines)
	m.uow.On("ProductRepository").Return(m.products)
	return m
}

func (m stockMocks) assertExpectations(t *testing.T) {
	t.Helper()
	m.orders.AssertExpectations(t)
	m.lines.AssertExpectations(t)
	m.products.AssertExpectations(t)
	m.uow.AssertExpectations(t)
	m.factory.AssertExpectations(t)
}

func TestAddProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddProductCommand(3, 7, 3)
	require.NoError(t, err)

	m := newStockMocks()
	testOrder := restoreTestOrder(t, 3)
	testProduct := restoreTestProduct(t, 7, 10)

	m.uow.On("Begin", ctx).Return(nil).Once()
	m.orders.On("Get", ctx, int64(3)).Return(testOrder, nil).Once()
	m.lines.On("OfOrder", ctx, int64(3)).Return(map[int64]int{}, nil).Once()
	m.products.On("GetForUpdate", ctx, int64(7)).Return(testProduct, nil).Once()
	m.lines.On("Add", ctx, int64(3), int64(7), 3).Return(nil).Once()
	m.products.On("Update", ctx, testProduct).Return(nil).Once()
	m.uow.On("Commit", ctx).Return(nil).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewAddProductCommandHandler(m.factory)
	snapshot, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 7, snapshot.Stock())

	m.assertExpectations(t)
}

func TestAddProductCommandHandler_Handle_DuplicateLine(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddProductCommand(3, 7, 3)
	require.NoError(t, err)

	m := newStockMocks()
	testOrder := restoreTestOrder(t, 3)
	testProduct := restoreTestProduct(t, 7, 10)

	m.uow.On("Begin", ctx).Return(nil).Once()
	m.orders.On("Get", ctx, int64(3)).Return(testOrder, nil).Once()
	m.lines.On("OfOrder", ctx, int64(3)).Return(map[int64]int{7: 2}, nil).Once()
	m.products.On("GetForUpdate", ctx, int64(7)).Return(testProduct, nil).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewAddProductCommandHandler(m.factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)

	var alreadyExistsErr *errs.ObjectAlreadyExistsError
	require.ErrorAs(t, err, &alreadyExistsErr)

	// Stock never moved.
	require.Equal(t, 10, testProduct.Stock())
	m.assertExpectations(t)
}

func TestAddProductCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddProductCommand(3, 7, 11)
	require.NoError(t, err)

	m := newStockMocks()
	testOrder := restoreTestOrder(t, 3)
	testProduct := restoreTestProduct(t, 7, 10)

	m.uow.On("Begin", ctx).Return(nil).Once()
	m.orders.On("Get", ctx, int64(3)).Return(testOrder, nil).Once()
	m.lines.On("OfOrder", ctx, int64(3)).Return(map[int64]int{}, nil).Once()
	m.products.On("GetForUpdate", ctx, int64(7)).Return(testProduct, nil).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewAddProductCommandHandler(m.factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	require.Equal(t, 10, testProduct.Stock())
	m.assertExpectations(t)
}

func TestAddProductCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddProductCommand(3, 7, 1)
	require.NoError(t, err)

	m := newStockMocks()

	m.uow.On("Begin", ctx).Return(nil).Once()
	m.orders.On("Get", ctx, int64(3)).
		Return(nil, errs.NewObjectNotFoundError("order", "3")).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewAddProductCommandHandler(m.factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	m.assertExpectations(t)
}

func TestAddProductCommandHandler_Handle_ProductNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddProductCommand(3, 7, 1)
	require.NoError(t, err)

	m := newStockMocks()
	testOrder := restoreTestOrder(t, 3)

	m.uow.On("Begin", ctx).Return(nil).Once()
	m.orders.On("Get", ctx, int64(3)).Return(testOrder, nil).Once()
	m.lines.On("OfOrder", ctx, int64(3)).Return(map[int64]int{}, nil).Once()
	m.products.On("GetForUpdate", ctx, int64(7)).
		Return(nil, errs.NewObjectNotFoundError("product", "7")).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewAddProductCommandHandler(m.factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	m.assertExpectations(t)
}

func TestAddProductCommandHandler_Handle_LineAddError_NoCommit(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddProductCommand(3, 7, 3)
	require.NoError(t, err)

	m := newStockMocks()
	testOrder := restoreTestOrder(t, 3)
	testProduct := restoreTestProduct(t, 7, 10)

	m.uow.On("Begin", ctx).Return(nil).Once()
	m.orders.On("Get", ctx, int64(3)).Return(testOrder, nil).Once()
	m.lines.On("OfOrder", ctx, int64(3)).Return(map[int64]int{}, nil).Once()
	m.products.On("GetForUpdate", ctx, int64(7)).Return(testProduct, nil).Once()
	m.lines.On("Add", ctx, int64(3), int64(7), 3).Return(errors.New("insert failed")).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewAddProductCommandHandler(m.factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)

	m.uow.AssertNotCalled(t, "Commit", ctx)
	m.assertExpectations(t)
}
