// Package warehouserepo provides data transfer objects and mapping functions
// for warehouse persistence. Implements the repository pattern for the
// warehouse aggregate, handling the conversion between domain entities and
// database representations.
package warehouserepo

import (
	"time"

	"fulfilment/internal/core/domain/model/warehouse"
)

// WarehouseDTO represents the database structure for persisting warehouse
// aggregates. The business-unit code is unique among active rows only; the
// partial unique index lets an archived code be reused by a replacement
// while the database still backstops concurrent duplicate creates.
type WarehouseDTO struct {
	ID               uint       `gorm:"primaryKey;autoIncrement"`
	BusinessUnitCode string     `gorm:"type:varchar(64);not null;index:idx_warehouses_active_code,unique,where:archived_at IS NULL"`
	Location         string     `gorm:"type:varchar(64);not null;index"`
	Capacity         int        `gorm:"type:int;not null"`
	Stock            *int       `gorm:"type:int"`
	CreatedAt        time.Time  `gorm:"not null"`
	ArchivedAt       *time.Time `gorm:"index"`
}

// TableName specifies the database table name for warehouse entities.
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

// fromDomain converts a warehouse domain aggregate to its database representation.
func fromDomain(aggregate *warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		BusinessUnitCode: aggregate.BusinessUnitCode(),
		Location:         aggregate.Location(),
		Capacity:         aggregate.Capacity(),
		Stock:            aggregate.Stock(),
		CreatedAt:        aggregate.CreatedAt(),
		ArchivedAt:       aggregate.ArchivedAt(),
	}
}

// toDomain converts a database DTO to a warehouse domain aggregate.
func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	return warehouse.RestoreWarehouse(
		dto.BusinessUnitCode,
		dto.Location,
		dto.Capacity,
		dto.Stock,
		dto.CreatedAt,
		dto.ArchivedAt,
	)
}
