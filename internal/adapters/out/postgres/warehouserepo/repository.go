package warehouserepo

import (
	"context"
	"errors"

	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWarehouseRepository implements WarehouseRepository using GORM.
type GormWarehouseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormWarehouseRepository creates a new GORM warehouse repository.
func NewGormWarehouseRepository(db *gorm.DB, tracker aggregateTracker) *GormWarehouseRepository {
	return &GormWarehouseRepository{
		db:      db,
		tracker: tracker,
	}
}

// GetAllActive retrieves every warehouse whose archive timestamp is unset.
func (r *GormWarehouseRepository) GetAllActive(ctx context.Context) ([]*warehouse.Warehouse, error) {
	var dtos []WarehouseDTO
	if err := r.db.WithContext(ctx).
		Where("archived_at IS NULL").
		Order("business_unit_code").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// FindActiveByCode retrieves the active warehouse carrying the business-unit code.
func (r *GormWarehouseRepository) FindActiveByCode(ctx context.Context, businessUnitCode string) (*warehouse.Warehouse, error) {
	var dto WarehouseDTO
	err := r.db.WithContext(ctx).
		First(&dto, "business_unit_code = ? AND archived_at IS NULL", businessUnitCode).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("businessUnitCode", businessUnitCode)
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// FindActiveByLocation retrieves all active warehouses at the given location.
func (r *GormWarehouseRepository) FindActiveByLocation(ctx context.Context, location string) ([]*warehouse.Warehouse, error) {
	var dtos []WarehouseDTO
	if err := r.db.WithContext(ctx).
		Where("location = ? AND archived_at IS NULL", location).
		Order("business_unit_code").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Add saves a new warehouse to the database.
// The partial unique index on active codes turns a concurrent duplicate
// create into an ObjectAlreadyExistsError.
func (r *GormWarehouseRepository) Add(ctx context.Context, aggregate *warehouse.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause(
				"businessUnitCode", aggregate.BusinessUnitCode(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.BusinessUnitCode(), aggregate)
	return nil
}

// Update persists changes to the stored record carrying the aggregate's
// business-unit code. The lookup targets the active row; archiving is itself
// an update, so the new archive timestamp is written through here.
func (r *GormWarehouseRepository) Update(ctx context.Context, aggregate *warehouse.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&WarehouseDTO{}).
		Where("business_unit_code = ? AND archived_at IS NULL", aggregate.BusinessUnitCode()).
		Updates(map[string]any{
			"location":    aggregate.Location(),
			"capacity":    aggregate.Capacity(),
			"stock":       aggregate.Stock(),
			"archived_at": aggregate.ArchivedAt(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("businessUnitCode", aggregate.BusinessUnitCode())
	}

	r.tracker.TrackAggregate(aggregate.BusinessUnitCode(), aggregate)
	return nil
}

// Remove hard-deletes the stored record matching the aggregate.
// Administrative cleanup only; the lifecycle never calls this.
func (r *GormWarehouseRepository) Remove(ctx context.Context, aggregate *warehouse.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("business_unit_code = ? AND created_at = ?", aggregate.BusinessUnitCode(), aggregate.CreatedAt()).
		Delete(&WarehouseDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("businessUnitCode", aggregate.BusinessUnitCode())
	}

	return nil
}

func toDomainSlice(dtos []WarehouseDTO) ([]*warehouse.Warehouse, error) {
	warehouses := make([]*warehouse.Warehouse, 0, len(dtos))
	for _, dto := range dtos {
		w, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		warehouses = append(warehouses, w)
	}

	return warehouses, nil
}
