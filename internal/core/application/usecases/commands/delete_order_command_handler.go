package commands

import (
	"context"
	"log/slog"
)

// DeleteOrderCommandHandler handles outright order deletion. The header
// delete cascades lines, details and staff links at the store, but stock
// is NOT restored; callers who want the quantities back use CancelOrder.
// Every deletion is logged with the order id since the stock discrepancy
// it can introduce is otherwise invisible.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "delete_order_command_handler"),
	}
}

// Handle processes the delete order command.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	if err := uow.OrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.WarnContext(ctx, "Order deleted without stock reversal", "orderId", cmd.OrderID())
	return nil
}
