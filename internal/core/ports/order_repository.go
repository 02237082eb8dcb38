package ports

import (
	"context"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order headers.
// Line rows are owned by OrderLineRepository; deleting a header cascades
// to lines, details and staff links at the store.
type OrderRepository interface {
	// NextID obtains a fresh order identifier from the store's sequence.
	// Ids are monotonically increasing and never reused.
	NextID(ctx context.Context) (int64, error)

	// Add persists a new order header.
	// The order must be valid and its id not already taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order header by its identifier. The returned
	// aggregate has unloaded lines; callers complete the two-phase load
	// through OrderLineRepository.OfOrder and Order.AttachLines.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetByReference retrieves an order header by its external reference.
	GetByReference(ctx context.Context, reference kernel.Reference) (*order.Order, error)

	// Exists reports whether an order with the given id is on record.
	Exists(ctx context.Context, id int64) (bool, error)

	// Delete removes the order header. Dependent line, detail and staff
	// link rows are removed by the store's cascade, not re-verified here.
	// Returns ObjectNotFoundError if no such order exists.
	Delete(ctx context.Context, id int64) error
}
