package detailrepo

import (
	"context"
	"errors"
	"strconv"

	"retail/internal/core/domain/model/order"
	"retail/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDetailRepository implements DetailRepository using GORM.
type GormDetailRepository struct {
	db *gorm.DB
}

// NewGormDetailRepository creates a new GORM detail repository.
func NewGormDetailRepository(db *gorm.DB) *GormDetailRepository {
	return &GormDetailRepository{db: db}
}

// AddCollection inserts a collection detail for the order.
func (r *GormDetailRepository) AddCollection(ctx context.Context, orderID int64, detail order.CollectionDetail) error {
	if err := detail.Validate(); err != nil {
		return err
	}

	dto := collectionFromDomain(orderID, detail)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError("collectionDetail",
				strconv.FormatInt(orderID, 10))
		}
		return err
	}
	return nil
}

// AddDelivery inserts a delivery detail for the order.
func (r *GormDetailRepository) AddDelivery(ctx context.Context, orderID int64, detail order.DeliveryDetail) error {
	if err := detail.Validate(); err != nil {
		return err
	}

	dto := deliveryFromDomain(orderID, detail)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError("deliveryDetail",
				strconv.FormatInt(orderID, 10))
		}
		return err
	}
	return nil
}
