// Package linerepo provides persistence for order lines, the
// (order, product, quantity) rows stock consistency hangs on.
package linerepo

// OrderLineDTO represents the database structure for persisting order lines.
// The (order, product) pair is the primary key.
type OrderLineDTO struct {
	OrderID   int64 `gorm:"primaryKey"`
	ProductID int64 `gorm:"primaryKey"`
	Quantity  int
}

// TableName specifies the database table name for order line rows.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}
