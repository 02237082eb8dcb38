package linerepo

import (
	"context"
	"errors"
	"fmt"

	"retail/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderLineRepository implements OrderLineRepository using GORM.
type GormOrderLineRepository struct {
	db *gorm.DB
}

// NewGormOrderLineRepository creates a new GORM order line repository.
func NewGormOrderLineRepository(db *gorm.DB) *GormOrderLineRepository {
	return &GormOrderLineRepository{db: db}
}

// Add inserts a line row for the (orderID, productID) pair.
func (r *GormOrderLineRepository) Add(ctx context.Context, orderID, productID int64, quantity int) error {
	dto := OrderLineDTO{
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError("orderLine", pairKey(orderID, productID))
		}
		return err
	}
	return nil
}

// OfOrder returns all lines of an order as a productID to quantity mapping.
func (r *GormOrderLineRepository) OfOrder(ctx context.Context, orderID int64) (map[int64]int, error) {
	var dtos []OrderLineDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "order_id = ?", orderID).Error; err != nil {
		return nil, err
	}

	lines := make(map[int64]int, len(dtos))
	for _, dto := range dtos {
		lines[dto.ProductID] = dto.Quantity
	}
	return lines, nil
}

// Exists reports whether the (orderID, productID) pair is recorded.
func (r *GormOrderLineRepository) Exists(ctx context.Context, orderID, productID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderLineDTO{}).
		Where("order_id = ? AND product_id = ?", orderID, productID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes a single line row.
func (r *GormOrderLineRepository) Delete(ctx context.Context, orderID, productID int64) error {
	result := r.db.WithContext(ctx).
		Delete(&OrderLineDTO{}, "order_id = ? AND product_id = ?", orderID, productID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderLine", pairKey(orderID, productID))
	}

	return nil
}

func pairKey(orderID, productID int64) string {
	return fmt.Sprintf("%d/%d", orderID, productID)
}
