package queries

import (
	"context"
	"time"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetStaleCollectionsQueryHandler finds uncollected collection orders
// whose collection date passed the query's threshold.
type GetStaleCollectionsQueryHandler struct {
	db *gorm.DB
}

// NewGetStaleCollectionsQueryHandler creates a handler for stale
// collection lookups.
func NewGetStaleCollectionsQueryHandler(db *gorm.DB) GetStaleCollectionsQueryHandler {
	return GetStaleCollectionsQueryHandler{db: db}
}

// Handle executes the staleness query. Staleness is measured against the
// recorded collection date, not the placement date; an order without a
// collection detail is never stale. The cutoff is computed against the
// current date, so an order due exactly olderThanDays ago counts.
func (h GetStaleCollectionsQueryHandler) Handle(
	ctx context.Context,
	query GetStaleCollectionsQuery,
) ([]GetStaleCollectionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -query.OlderThanDays())

	stale := make([]GetStaleCollectionsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			cd.collect_on
		FROM orders o
		INNER JOIN collection_details cd ON cd.order_id = o.id
		WHERE o.order_type = ?
		  AND o.completed = false
		  AND cd.collect_on <= ?
		ORDER BY cd.collect_on, o.id
	`, int(order.Collection), cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        int64
			collectOn time.Time
		)
		if err = rows.Scan(&id, &collectOn); err != nil {
			return nil, err
		}

		stale = append(stale, GetStaleCollectionsQueryResponse{
			OrderID:   id,
			CollectOn: kernel.DateOf(collectOn),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stale, nil
}
