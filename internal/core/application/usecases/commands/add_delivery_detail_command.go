package commands

import (
	"errors"

	"retail/internal/core/domain/model/order"
	"retail/internal/pkg/guard"
)

var ErrAddDeliveryDetailCommandIsNotConstructed = errors.New(
	"AddDeliveryDetailCommand must be created via NewAddDeliveryDetailCommand constructor",
)

// AddDeliveryDetailCommand represents a request to record the shipping
// address and date for an order.
type AddDeliveryDetailCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	detail  order.DeliveryDetail

	guard guard.ConstructorGuard
}

// NewAddDeliveryDetailCommand creates a command to attach a delivery
// detail to an order. The detail must come from NewDeliveryDetail.
func NewAddDeliveryDetailCommand(orderID int64, detail order.DeliveryDetail) (AddDeliveryDetailCommand, error) {
	cmd := AddDeliveryDetailCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDetail(detail),
	); err != nil {
		return AddDeliveryDetailCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddDeliveryDetailCommand) Validate() error {
	return c.guard.Validate(ErrAddDeliveryDetailCommandIsNotConstructed)
}

// OrderID returns the identifier of the order the detail belongs to.
func (c AddDeliveryDetailCommand) OrderID() int64 {
	return c.orderID
}

// Detail returns the delivery detail being recorded.
func (c AddDeliveryDetailCommand) Detail() order.DeliveryDetail {
	return c.detail
}

func (c *AddDeliveryDetailCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *AddDeliveryDetailCommand) setDetail(detail order.DeliveryDetail) error {
	if err := detail.Validate(); err != nil {
		return err
	}

	c.detail = detail
	return nil
}
