package commands

import (
	"errors"

	"retail/internal/pkg/guard"
)

var ErrAddProductCommandIsNotConstructed = errors.New(
	"AddProductCommand must be created via NewAddProductCommand constructor",
)

// AddProductCommand represents a request to add a product line to an
// existing order. The quantity requested must later clear the product's
// current stock level; the command only gates the coarse input shape.
type AddProductCommand struct { //nolint:recvcheck //using for validation
	orderID   int64
	productID int64
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddProductCommand creates a command to add a product line to an order.
// Both identifiers must be positive and the quantity at least 1.
func NewAddProductCommand(orderID, productID int64, quantity int) (AddProductCommand, error) {
	cmd := AddProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddProductCommand) Validate() error {
	return c.guard.Validate(ErrAddProductCommandIsNotConstructed)
}

// OrderID returns the identifier of the order receiving the line.
func (c AddProductCommand) OrderID() int64 {
	return c.orderID
}

// ProductID returns the identifier of the product being sold.
func (c AddProductCommand) ProductID() int64 {
	return c.productID
}

// Quantity returns the number of units requested.
func (c AddProductCommand) Quantity() int {
	return c.quantity
}

func (c *AddProductCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *AddProductCommand) setProductID(productID int64) error {
	if productID <= 0 {
		return ErrProductIDIsInvalid
	}

	c.productID = productID
	return nil
}

func (c *AddProductCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
