// Package queries contains read operations over the order store.
// Implements the query side of the CQRS architecture: handlers read
// directly through the database connection and return plain response
// structs, bypassing the aggregates.
package queries

import (
	"errors"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// ErrOrderIDIsInvalid is returned for non-positive order identifiers.
var ErrOrderIDIsInvalid = errors.New("order id must be greater than 0")

// GetOrderQuery retrieves a single order with its lines. The read happens
// in two phases, header first and lines second, mirroring how the write
// side loads the aggregate.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve an order by id.
func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, ErrOrderIDIsInvalid
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

// GetOrderQueryResponse represents a complete order in the read model.
type GetOrderQueryResponse struct {
	ID        int64
	Reference kernel.Reference
	OrderType string
	Completed bool
	PlacedAt  kernel.Date
	Lines     []OrderLineResponse
}

// OrderLineResponse represents one sold product on an order.
type OrderLineResponse struct {
	ProductID int64
	Quantity  int
}
