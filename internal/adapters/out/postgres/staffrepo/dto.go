// Package staffrepo provides persistence for staff members and their
// order attributions.
package staffrepo

// StaffDTO represents the database structure for staff members. Rows are
// provisioned externally; the engine only reads them.
type StaffDTO struct {
	ID        int64 `gorm:"primaryKey"`
	FirstName string
	LastName  string
}

// TableName specifies the database table name for staff rows.
func (StaffDTO) TableName() string {
	return "staff"
}

// StaffOrderDTO links a staff member to an order they sold.
// The (staff, order) pair is the primary key.
type StaffOrderDTO struct {
	StaffID int64 `gorm:"primaryKey"`
	OrderID int64 `gorm:"primaryKey"`
}

// TableName specifies the database table name for staff order links.
func (StaffOrderDTO) TableName() string {
	return "staff_orders"
}
