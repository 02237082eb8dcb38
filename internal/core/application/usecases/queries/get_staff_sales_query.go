package queries

import (
	"errors"

	"retail/internal/pkg/guard"
)

var ErrGetStaffSalesQueryIsNotConstructed = errors.New(
	"GetStaffSalesQuery must be created via NewGetStaffSalesQuery constructor",
)

// GetStaffSalesQuery summarizes sales per staff member: how many orders
// each sold and the value of the lines on them.
type GetStaffSalesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStaffSalesQuery creates a parameterless staff sales summary query.
func NewGetStaffSalesQuery() GetStaffSalesQuery {
	return GetStaffSalesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStaffSalesQuery) Validate() error {
	return q.guard.Validate(ErrGetStaffSalesQueryIsNotConstructed)
}

// GetStaffSalesQueryResponse represents one staff member's sales summary.
type GetStaffSalesQueryResponse struct {
	StaffID    int64
	FirstName  string
	LastName   string
	OrdersSold int
	TotalValue float64
}
