// Package storerepo provides data transfer objects and mapping functions
// for store persistence.
package storerepo

import (
	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/store"

	"github.com/google/uuid"
)

// StoreDTO represents the database structure for persisting stores.
type StoreDTO struct {
	ID                      uuid.UUID `gorm:"primaryKey;type:uuid"`
	Name                    string    `gorm:"type:varchar(255);not null"`
	QuantityProductsInStock int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for store entities.
func (StoreDTO) TableName() string {
	return "stores"
}

// fromDomain converts a store domain entity to its database representation.
func fromDomain(aggregate *store.Store) StoreDTO {
	return StoreDTO{
		ID:                      aggregate.ID().Bytes(),
		Name:                    aggregate.Name(),
		QuantityProductsInStock: aggregate.QuantityProductsInStock(),
	}
}

// toDomain converts a database DTO to a store domain entity.
func toDomain(dto StoreDTO) (*store.Store, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return store.RestoreStore(id, dto.Name, dto.QuantityProductsInStock)
}
