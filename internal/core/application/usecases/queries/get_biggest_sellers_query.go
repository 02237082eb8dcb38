package queries

import (
	"errors"

	"retail/internal/pkg/guard"
)

var (
	ErrGetBiggestSellersQueryIsNotConstructed = errors.New(
		"GetBiggestSellersQuery must be created via NewGetBiggestSellersQuery constructor",
	)
	ErrLimitIsInvalid = errors.New("limit must be greater than 0")
)

// GetBiggestSellersQuery ranks products by total quantity sold across all
// orders still on record.
type GetBiggestSellersQuery struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewGetBiggestSellersQuery creates a query for the top selling products.
func NewGetBiggestSellersQuery(limit int) (GetBiggestSellersQuery, error) {
	if limit <= 0 {
		return GetBiggestSellersQuery{}, ErrLimitIsInvalid
	}

	return GetBiggestSellersQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBiggestSellersQuery) Validate() error {
	return q.guard.Validate(ErrGetBiggestSellersQueryIsNotConstructed)
}

// Limit returns the maximum number of products to rank.
func (q GetBiggestSellersQuery) Limit() int {
	return q.limit
}

// GetBiggestSellersQueryResponse represents one product's sales total.
type GetBiggestSellersQueryResponse struct {
	ProductID   int64
	Description string
	TotalSold   int
}
