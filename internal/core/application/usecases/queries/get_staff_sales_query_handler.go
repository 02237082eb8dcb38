package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetStaffSalesQueryHandler summarizes order counts and line value per
// staff member. Staff with no attributed orders appear with zeros, so the
// report covers the whole roster.
type GetStaffSalesQueryHandler struct {
	db *gorm.DB
}

// NewGetStaffSalesQueryHandler creates a handler for staff sales summaries.
func NewGetStaffSalesQueryHandler(db *gorm.DB) GetStaffSalesQueryHandler {
	return GetStaffSalesQueryHandler{db: db}
}

// Handle executes the summary query, ordered by total value descending.
func (h GetStaffSalesQueryHandler) Handle(
	ctx context.Context,
	query GetStaffSalesQuery,
) ([]GetStaffSalesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sales := make([]GetStaffSalesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.first_name,
			s.last_name,
			COUNT(DISTINCT so.order_id) AS orders_sold,
			COALESCE(SUM(l.quantity * p.price), 0) AS total_value
		FROM staff s
		LEFT JOIN staff_orders so ON so.staff_id = s.id
		LEFT JOIN order_lines l ON l.order_id = so.order_id
		LEFT JOIN products p ON p.id = l.product_id
		GROUP BY s.id, s.first_name, s.last_name
		ORDER BY total_value DESC, s.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var sale GetStaffSalesQueryResponse
		if err = rows.Scan(
			&sale.StaffID,
			&sale.FirstName,
			&sale.LastName,
			&sale.OrdersSold,
			&sale.TotalValue,
		); err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sales, nil
}
