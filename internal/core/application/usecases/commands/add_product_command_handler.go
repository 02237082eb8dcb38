package commands

import (
	"context"

	"retail/internal/core/domain/model/product"
)

// AddProductCommandHandler handles the business logic for selling a
// product on an order. The line insert and the stock decrement execute
// inside one transaction; the product row is locked for the duration so
// concurrent sales of the same product serialize instead of both reading
// the same stock level.
type AddProductCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewAddProductCommandHandler creates a handler for adding product lines.
// Requires a StockUoWFactory spanning order, line and product persistence.
func NewAddProductCommandHandler(uowFactory StockUoWFactory) AddProductCommandHandler {
	return AddProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add product command and returns a snapshot of the
// product with its decremented stock. The order's lines are loaded before
// the aggregate accepts the new line, so duplicate detection sees every
// line already sold.
func (h AddProductCommandHandler) Handle(ctx context.Context, cmd AddProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	lineRepo := uow.OrderLineRepository()
	productRepo := uow.ProductRepository()

	existingOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	lines, err := lineRepo.OfOrder(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = existingOrder.AttachLines(lines); err != nil {
		return nil, err
	}

	soldProduct, err := productRepo.GetForUpdate(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if err = existingOrder.AddLine(cmd.ProductID(), cmd.Quantity()); err != nil {
		return nil, err
	}

	if err = soldProduct.Decrease(cmd.Quantity()); err != nil {
		return nil, err
	}

	if err = lineRepo.Add(ctx, cmd.OrderID(), cmd.ProductID(), cmd.Quantity()); err != nil {
		return nil, err
	}

	if err = productRepo.Update(ctx, soldProduct); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return soldProduct, nil
}
