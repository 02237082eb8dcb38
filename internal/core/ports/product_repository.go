// Package ports defines repository and unit-of-work interfaces for the
// retail domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"retail/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for inventory items.
// Products are provisioned externally; this contract exposes reads plus
// the single mutation the engine performs, a stock update.
type ProductRepository interface {
	// Exists reports whether a product with the given id is on record.
	Exists(ctx context.Context, id int64) (bool, error)

	// Get retrieves a product by its identifier.
	// Returns ObjectNotFoundError if no such product exists.
	Get(ctx context.Context, id int64) (*product.Product, error)

	// GetForUpdate retrieves a product and locks its row for the duration
	// of the surrounding transaction, serializing concurrent stock
	// movements against the same product. Outside a transaction it
	// behaves like Get.
	GetForUpdate(ctx context.Context, id int64) (*product.Product, error)

	// Update persists the product's current state, in practice its stock
	// level after a Decrease or Restore.
	// Returns ObjectNotFoundError if no such product exists.
	Update(ctx context.Context, aggregate *product.Product) error
}
