package commands

import (
	"context"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Draws the next id from the order sequence, generates an external
// reference, and persists the header.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns a snapshot of
// the recorded order. The returned aggregate carries its assigned id and
// reference; its line set is loaded and empty.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	id, err := orderRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(id, kernel.NewReference(), cmd.OrderType(), cmd.PlacedAt())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
