package ports

import "context"

// OrderLineRepository defines the persistence contract for order lines,
// the (order, product, quantity) associations stock must stay consistent
// with. The (orderID, productID) pair is unique.
type OrderLineRepository interface {
	// Add inserts a line row. Returns ObjectAlreadyExistsError if the
	// (orderID, productID) pair is already recorded.
	Add(ctx context.Context, orderID, productID int64, quantity int) error

	// OfOrder returns all lines of an order as a productID -> quantity
	// mapping. An order without lines yields an empty map.
	OfOrder(ctx context.Context, orderID int64) (map[int64]int, error)

	// Exists reports whether the (orderID, productID) pair is recorded.
	Exists(ctx context.Context, orderID, productID int64) (bool, error)

	// Delete removes a single line row.
	// Returns ObjectNotFoundError if no such line exists.
	Delete(ctx context.Context, orderID, productID int64) error
}
