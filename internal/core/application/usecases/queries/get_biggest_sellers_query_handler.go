package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetBiggestSellersQueryHandler ranks products by units sold.
// Cancelled and deleted orders take their lines with them, so the ranking
// reflects orders still on the books, not all-time sales.
type GetBiggestSellersQueryHandler struct {
	db *gorm.DB
}

// NewGetBiggestSellersQueryHandler creates a handler for seller rankings.
func NewGetBiggestSellersQueryHandler(db *gorm.DB) GetBiggestSellersQueryHandler {
	return GetBiggestSellersQueryHandler{db: db}
}

// Handle executes the ranking query. Ties resolve by product id for
// stable output.
func (h GetBiggestSellersQueryHandler) Handle(
	ctx context.Context,
	query GetBiggestSellersQuery,
) ([]GetBiggestSellersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sellers := make([]GetBiggestSellersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.description,
			SUM(l.quantity) AS total_sold
		FROM products p
		JOIN order_lines l ON l.product_id = p.id
		GROUP BY p.id, p.description
		ORDER BY total_sold DESC, p.id
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var seller GetBiggestSellersQueryResponse
		if err = rows.Scan(&seller.ProductID, &seller.Description, &seller.TotalSold); err != nil {
			return nil, err
		}
		sellers = append(sellers, seller)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sellers, nil
}
