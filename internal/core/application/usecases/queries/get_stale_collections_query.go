package queries

import (
	"errors"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/guard"
)

var (
	ErrGetStaleCollectionsQueryIsNotConstructed = errors.New(
		"GetStaleCollectionsQuery must be created via NewGetStaleCollectionsQuery constructor",
	)
	ErrOlderThanDaysIsInvalid = errors.New("olderThanDays must be greater than 0")
)

// GetStaleCollectionsQuery finds collection orders still uncollected a
// given number of days after their recorded collection date. These are
// candidates for cancellation, which returns their stock to the shelf.
type GetStaleCollectionsQuery struct { //nolint:recvcheck //using for validation
	olderThanDays int

	guard guard.ConstructorGuard
}

// NewGetStaleCollectionsQuery creates a query for stale collection orders.
func NewGetStaleCollectionsQuery(olderThanDays int) (GetStaleCollectionsQuery, error) {
	if olderThanDays <= 0 {
		return GetStaleCollectionsQuery{}, ErrOlderThanDaysIsInvalid
	}

	return GetStaleCollectionsQuery{
		olderThanDays: olderThanDays,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStaleCollectionsQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleCollectionsQueryIsNotConstructed)
}

// OlderThanDays returns the staleness threshold in days.
func (q GetStaleCollectionsQuery) OlderThanDays() int {
	return q.olderThanDays
}

// GetStaleCollectionsQueryResponse represents one stale collection order.
type GetStaleCollectionsQueryResponse struct {
	OrderID   int64
	CollectOn kernel.Date
}
