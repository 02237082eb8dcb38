package commands

import (
	"errors"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/order"
	"retail/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to record a new order.
// The order type decides the initial completion flag; the placement date
// arrives already parsed through the D-MON-YY codec.
//
// Example:
//
//	placedAt, _ := kernel.ParseDate("3-jan-21")
//	cmd, err := NewCreateOrderCommand(order.Collection, placedAt)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderType order.Type
	placedAt  kernel.Date

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to record a new order.
// Validates that the type is a known order type and the date was built
// through the kernel date codec.
func NewCreateOrderCommand(orderType order.Type, placedAt kernel.Date) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderType(orderType),
		orderCommand.setPlacedAt(placedAt),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderType returns the kind of order being recorded.
func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

// PlacedAt returns the order placement date.
func (c CreateOrderCommand) PlacedAt() kernel.Date {
	return c.placedAt
}

func (c *CreateOrderCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setPlacedAt(placedAt kernel.Date) error {
	if err := placedAt.Validate(); err != nil {
		return err
	}

	c.placedAt = placedAt
	return nil
}
