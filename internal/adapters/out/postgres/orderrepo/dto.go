// Package orderrepo provides data transfer objects and mapping functions
// for order header persistence. Line rows live in their own table and are
// mapped by the linerepo package; restored headers come back with lines
// unloaded and complete their load through Order.AttachLines.
package orderrepo

import (
	"time"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order headers.
type OrderDTO struct {
	ID        int64     `gorm:"primaryKey"`
	Reference uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	OrderType int       `gorm:"column:order_type"`
	Completed bool
	PlacedAt  time.Time `gorm:"type:date"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
// Lines are not part of the header row.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:        o.ID(),
		Reference: o.Reference().UUID(),
		OrderType: int(o.Type()),
		Completed: o.Completed(),
		PlacedAt:  o.PlacedAt().Time(),
	}
}

// toDomain reconstructs an order header from a database row using
// RestoreOrder. The returned aggregate has unloaded lines.
func toDomain(dto OrderDTO) (*order.Order, error) {
	reference, err := kernel.ReferenceFromUUID(dto.Reference)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		reference,
		order.Type(dto.OrderType),
		dto.Completed,
		kernel.DateOf(dto.PlacedAt),
	)
}
