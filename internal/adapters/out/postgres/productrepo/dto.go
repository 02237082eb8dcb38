// Package productrepo provides data transfer objects and mapping functions
// for product persistence. It implements the repository pattern for the
// product aggregate, converting between domain entities and database rows.
package productrepo

import (
	"retail/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID          int64 `gorm:"primaryKey"`
	Description string
	Price       float64 `gorm:"type:numeric(8,2)"`
	Stock       int
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product aggregate to its database representation.
func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID(),
		Description: p.Description(),
		Price:       p.Price(),
		Stock:       p.Stock(),
	}
}

// toDomain reconstructs a product aggregate from a database row.
func toDomain(dto ProductDTO) (*product.Product, error) {
	return product.RestoreProduct(dto.ID, dto.Description, dto.Price, dto.Stock)
}
