package product

import (
	"errors"
	"fmt"

	"retail/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the RestoreProduct factory method.
var ErrProductIsNotConstructed = errors.New("Product must be created via RestoreProduct constructor")

// Product represents an inventory item. Product rows are provisioned
// outside this system; the only mutation the engine performs is on stock.
//
// Product maintains one hard invariant: stock never goes below zero. Every
// stock movement passes through Decrease or Restore, which reject any
// amount that would break it.
type Product struct {
	id            int64
	description   string
	price         float64
	stock         int
	isConstructed bool
}

// RestoreProduct reconstructs a Product from persisted state.
// Stock must be non-negative; a negative value indicates corrupt data.
func RestoreProduct(id int64, description string, price float64, stock int) (*Product, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("product id",
			fmt.Errorf("%d is not a positive identifier", id))
	}
	if stock < 0 {
		return nil, errs.NewValueIsOutOfRangeError("stock", stock, 0, stock)
	}

	return &Product{
		id:            id,
		description:   description,
		price:         price,
		stock:         stock,
		isConstructed: true,
	}, nil
}

// Validate ensures the Product was constructed through RestoreProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() int64 {
	return p.id
}

// Description returns the product description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the unit price.
func (p *Product) Price() float64 {
	return p.price
}

// Stock returns the available quantity.
func (p *Product) Stock() int {
	return p.stock
}

// Decrease reserves quantity units of stock for an order line.
// The quantity must be positive and must not exceed the available stock;
// on success the new stock level is stock - quantity, never negative.
func (p *Product) Decrease(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > p.stock {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, p.stock)
	}

	p.stock -= quantity
	return nil
}

// Restore returns quantity units of stock to the shelf, the inverse of
// Decrease. Used when an order is cancelled.
func (p *Product) Restore(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	p.stock += quantity
	return nil
}
