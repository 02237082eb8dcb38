package commands

import (
	"context"
	"log/slog"

	"retail/internal/core/domain/model/order"
)

// AddCollectionDetailCommandHandler attaches collection details to orders.
// A detail on an order of a different type is recorded anyway; the
// mismatch is logged, not rejected, since the store keeps the kinds in
// separate tables and a later correction stays possible.
type AddCollectionDetailCommandHandler struct {
	uowFactory DetailUoWFactory
	logger     *slog.Logger
}

// NewAddCollectionDetailCommandHandler creates a handler for collection details.
func NewAddCollectionDetailCommandHandler(
	uowFactory DetailUoWFactory, logger *slog.Logger,
) AddCollectionDetailCommandHandler {
	return AddCollectionDetailCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "add_collection_detail_command_handler"),
	}
}

// Handle processes the add collection detail command.
func (h AddCollectionDetailCommandHandler) Handle(ctx context.Context, cmd AddCollectionDetailCommand) error {
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

	if detailedOrder.Type() != order.Collection {
		h.logger.WarnContext(ctx, "Collection detail on non-collection order",
			"orderId", cmd.OrderID(), "orderType", detailedOrder.Type().String())
	}

	if err = uow.DetailRepository().AddCollection(ctx, cmd.OrderID(), cmd.Detail()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
