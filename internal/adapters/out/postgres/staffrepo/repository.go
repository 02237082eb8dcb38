package staffrepo

import (
	"context"
	"errors"
	"fmt"

	"retail/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStaffRepository implements StaffRepository using GORM.
type GormStaffRepository struct {
	db *gorm.DB
}

// NewGormStaffRepository creates a new GORM staff repository.
func NewGormStaffRepository(db *gorm.DB) *GormStaffRepository {
	return &GormStaffRepository{db: db}
}

// Exists reports whether a staff member with the given id is on record.
func (r *GormStaffRepository) Exists(ctx context.Context, staffID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&StaffDTO{}).
		Where("id = ?", staffID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Link attributes an order to a staff member.
func (r *GormStaffRepository) Link(ctx context.Context, staffID, orderID int64) error {
	dto := StaffOrderDTO{
		StaffID: staffID,
		OrderID: orderID,
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError("staffOrder",
				fmt.Sprintf("%d/%d", staffID, orderID))
		}
		return err
	}
	return nil
}
