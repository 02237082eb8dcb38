package commands

import (
	"context"
	"fmt"
)

// CancelOrderCommandHandler handles the business logic for order
// cancellation. Every line's quantity returns to its product's stock,
// then the header delete cascades the lines away. Restores and the
// delete share one transaction, so a failure midway leaves stock and
// lines exactly as they were.
type CancelOrderCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires a StockUoWFactory spanning order, line and product persistence.
func NewCancelOrderCommandHandler(uowFactory StockUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancel order command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	lineRepo := uow.OrderLineRepository()
	productRepo := uow.ProductRepository()

	cancelledOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	lines, err := lineRepo.OfOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = cancelledOrder.AttachLines(lines); err != nil {
		return err
	}

	restored, err := cancelledOrder.Lines()
	if err != nil {
		return err
	}

	for productID, quantity := range restored {
		lineProduct, productErr := productRepo.GetForUpdate(ctx, productID)
		if productErr != nil {
			return productErr
		}

		if productErr = lineProduct.Restore(quantity); productErr != nil {
			return fmt.Errorf("restore stock for product %d: %w", productID, productErr)
		}

		if productErr = productRepo.Update(ctx, lineProduct); productErr != nil {
			return fmt.Errorf("restore stock for product %d: %w", productID, productErr)
		}
	}

	if err = orderRepo.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err = cancelledOrder.MarkDeleted(); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
