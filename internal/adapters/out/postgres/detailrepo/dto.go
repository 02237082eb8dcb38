// Package detailrepo provides persistence for the optional 1:1 satellite
// records of an order: collection pickup details and delivery addresses.
package detailrepo

import (
	"time"

	"retail/internal/core/domain/model/order"
)

// CollectionDetailDTO represents the database structure for collection
// details. order_id is both primary key and cascade foreign key.
type CollectionDetailDTO struct {
	OrderID   int64 `gorm:"primaryKey"`
	FirstName string
	LastName  string
	CollectOn time.Time `gorm:"column:collect_on;type:date"`
}

// TableName specifies the database table name for collection details.
func (CollectionDetailDTO) TableName() string {
	return "collection_details"
}

// DeliveryDetailDTO represents the database structure for delivery details.
type DeliveryDetailDTO struct {
	OrderID   int64 `gorm:"primaryKey"`
	FirstName string
	LastName  string
	House     string
	Street    string
	City      string
	DeliverOn time.Time `gorm:"column:deliver_on;type:date"`
}

// TableName specifies the database table name for delivery details.
func (DeliveryDetailDTO) TableName() string {
	return "delivery_details"
}

func collectionFromDomain(orderID int64, detail order.CollectionDetail) CollectionDetailDTO {
	return CollectionDetailDTO{
		OrderID:   orderID,
		FirstName: detail.FirstName(),
		LastName:  detail.LastName(),
		CollectOn: detail.Date().Time(),
	}
}

func deliveryFromDomain(orderID int64, detail order.DeliveryDetail) DeliveryDetailDTO {
	return DeliveryDetailDTO{
		OrderID:   orderID,
		FirstName: detail.FirstName(),
		LastName:  detail.LastName(),
		House:     detail.House(),
		Street:    detail.Street(),
		City:      detail.City(),
		DeliverOn: detail.Date().Time(),
	}
}
