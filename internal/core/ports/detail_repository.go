package ports

import (
	"context"

	"retail/internal/core/domain/model/order"
)

// DetailRepository defines the persistence contract for the optional 1:1
// satellite records of an order: who collects it, or where it ships to.
// The store does not enforce that the detail kind matches the order type;
// the engine warns on a mismatch but does not reject it.
type DetailRepository interface {
	// AddCollection inserts a collection detail for the order.
	AddCollection(ctx context.Context, orderID int64, detail order.CollectionDetail) error

	// AddDelivery inserts a delivery detail for the order.
	AddDelivery(ctx context.Context, orderID int64, detail order.DeliveryDetail) error
}
