package commands

import (
	"context"
	"log/slog"

	"retail/internal/core/domain/model/order"
)

// AddDeliveryDetailCommandHandler attaches delivery details to orders.
// As with collection details, a type mismatch is logged and recorded
// rather than rejected.
type AddDeliveryDetailCommandHandler struct {
	uowFactory DetailUoWFactory
	logger     *slog.Logger
}

// NewAddDeliveryDetailCommandHandler creates a handler for delivery details.
func NewAddDeliveryDetailCommandHandler(
	uowFactory DetailUoWFactory, logger *slog.Logger,
) AddDeliveryDetailCommandHandler {
	return AddDeliveryDetailCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "add_delivery_detail_command_handler"),
	}
}

// Handle processes the add delivery detail command.
func (h AddDeliveryDetailCommandHandler) Handle(ctx context.Context, cmd AddDeliveryDetailCommand) error {
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

	detailedOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if detailedOrder.Type() != order.Delivery {
		h.logger.WarnContext(ctx, "Delivery detail on non-delivery order",
			"orderId", cmd.OrderID(), "orderType", detailedOrder.Type().String())
	}

	if err = uow.DetailRepository().AddDelivery(ctx, cmd.OrderID(), cmd.Detail()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
