package commands

import (
	"errors"

	"retail/internal/core/domain/model/order"
	"retail/internal/pkg/guard"
)

var ErrAddCollectionDetailCommandIsNotConstructed = errors.New(
	"AddCollectionDetailCommand must be created via NewAddCollectionDetailCommand constructor",
)

// AddCollectionDetailCommand represents a request to record who will
// collect an order and when.
type AddCollectionDetailCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	detail  order.CollectionDetail

	guard guard.ConstructorGuard
}

// NewAddCollectionDetailCommand creates a command to attach a collection
// detail to an order. The detail must come from NewCollectionDetail.
func NewAddCollectionDetailCommand(orderID int64, detail order.CollectionDetail) (AddCollectionDetailCommand, error) {
	cmd := AddCollectionDetailCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDetail(detail),
	); err != nil {
		return AddCollectionDetailCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCollectionDetailCommand) Validate() error {
	return c.guard.Validate(ErrAddCollectionDetailCommandIsNotConstructed)
}

// OrderID returns the identifier of the order the detail belongs to.
func (c AddCollectionDetailCommand) OrderID() int64 {
	return c.orderID
}

// Detail returns the collection detail being recorded.
func (c AddCollectionDetailCommand) Detail() order.CollectionDetail {
	return c.detail
}

func (c *AddCollectionDetailCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *AddCollectionDetailCommand) setDetail(detail order.CollectionDetail) error {
	if err := detail.Validate(); err != nil {
		return err
	}

	c.detail = detail
	return nil
}
