// Package productrepo provides data transfer objects and mapping functions
// for product persistence.
package productrepo

import (
	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID          uuid.UUID       `gorm:"primaryKey;type:uuid"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain entity to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price(),
	}
}

// toDomain converts a database DTO to a product domain entity.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Description, dto.Price)
}
