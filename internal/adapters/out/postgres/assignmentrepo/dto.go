// Package assignmentrepo provides data transfer objects and mapping functions
// for fulfillment assignment persistence. Implements the repository pattern
// for the assignment aggregate, handling the conversion between domain
// entities and database representations.
package assignmentrepo

import (
	"time"

	"fulfilment/internal/core/domain/model/fulfillment"
	"fulfilment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting fulfillment
// assignments. The unique index over the triple backstops concurrent
// duplicate creates that slip past the application-level existence check.
type AssignmentDTO struct {
	ID                        uuid.UUID `gorm:"primaryKey;type:uuid"`
	ProductID                 uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_assignments_triple"`
	WarehouseBusinessUnitCode string    `gorm:"type:varchar(64);not null;index;uniqueIndex:idx_assignments_triple"`
	StoreID                   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_assignments_triple"`
	CreatedAt                 time.Time `gorm:"not null"`
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts an assignment domain aggregate to its database representation.
func fromDomain(aggregate *fulfillment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:                        aggregate.ID().Bytes(),
		ProductID:                 aggregate.ProductID().Bytes(),
		WarehouseBusinessUnitCode: aggregate.WarehouseBusinessUnitCode(),
		StoreID:                   aggregate.StoreID().Bytes(),
		CreatedAt:                 aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an assignment domain aggregate.
func toDomain(dto AssignmentDTO) (*fulfillment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}

	return fulfillment.RestoreAssignment(
		id,
		productID,
		dto.WarehouseBusinessUnitCode,
		storeID,
		dto.CreatedAt,
	)
}
