package assignmentrepo

import (
	"context"
	"errors"
	"fmt"

	"fulfilment/internal/core/domain/model/fulfillment"
	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new assignment to the database.
// The unique index over the triple turns a concurrent duplicate create
// into an ObjectAlreadyExistsError.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *fulfillment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause(
				"assignment", tripleKey(aggregate.ProductID(), aggregate.WarehouseBusinessUnitCode(), aggregate.StoreID()), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves an assignment by its surrogate identifier.
func (r *GormAssignmentRepository) Get(ctx context.Context, assignmentID kernel.UUID) (*fulfillment.Assignment, error) {
	var dto AssignmentDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", assignmentID.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("assignmentId", assignmentID)
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every assignment ordered by creation time.
func (r *GormAssignmentRepository) GetAll(ctx context.Context) ([]*fulfillment.Assignment, error) {
	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).Order("created_at").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// FindByStore retrieves all assignments serving the given store.
func (r *GormAssignmentRepository) FindByStore(ctx context.Context, storeID kernel.UUID) ([]*fulfillment.Assignment, error) {
	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID.Bytes()).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// FindByWarehouse retrieves all assignments fulfilled by the given warehouse.
func (r *GormAssignmentRepository) FindByWarehouse(ctx context.Context, warehouseBUCode string) ([]*fulfillment.Assignment, error) {
	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).
		Where("warehouse_business_unit_code = ?", warehouseBUCode).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// FindByProduct retrieves all assignments fulfilling the given product.
func (r *GormAssignmentRepository) FindByProduct(ctx context.Context, productID kernel.UUID) ([]*fulfillment.Assignment, error) {
	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID.Bytes()).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Exists reports whether an assignment for the exact triple is stored.
func (r *GormAssignmentRepository) Exists(
	ctx context.Context,
	productID kernel.UUID,
	warehouseBUCode string,
	storeID kernel.UUID,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("product_id = ? AND warehouse_business_unit_code = ? AND store_id = ?",
			productID.Bytes(), warehouseBUCode, storeID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// CountWarehousesForProductAtStore counts the distinct warehouses fulfilling
// the product for the store.
func (r *GormAssignmentRepository) CountWarehousesForProductAtStore(
	ctx context.Context,
	productID kernel.UUID,
	storeID kernel.UUID,
) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("product_id = ? AND store_id = ?", productID.Bytes(), storeID.Bytes()).
		Distinct("warehouse_business_unit_code").
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// CountDistinctWarehousesForStore counts the distinct warehouses serving the store.
func (r *GormAssignmentRepository) CountDistinctWarehousesForStore(ctx context.Context, storeID kernel.UUID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("store_id = ?", storeID.Bytes()).
		Distinct("warehouse_business_unit_code").
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// CountDistinctProductsForWarehouse counts the distinct products the warehouse fulfills.
func (r *GormAssignmentRepository) CountDistinctProductsForWarehouse(ctx context.Context, warehouseBUCode string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("warehouse_business_unit_code = ?", warehouseBUCode).
		Distinct("product_id").
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// IsWarehouseAssignedToStore reports whether any assignment links the
// warehouse to the store.
func (r *GormAssignmentRepository) IsWarehouseAssignedToStore(
	ctx context.Context,
	warehouseBUCode string,
	storeID kernel.UUID,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("warehouse_business_unit_code = ? AND store_id = ?", warehouseBUCode, storeID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// IsProductInWarehouse reports whether any assignment links the product to
// the warehouse.
func (r *GormAssignmentRepository) IsProductInWarehouse(
	ctx context.Context,
	productID kernel.UUID,
	warehouseBUCode string,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("product_id = ? AND warehouse_business_unit_code = ?", productID.Bytes(), warehouseBUCode).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// DeleteByID removes the assignment with the given surrogate identifier.
func (r *GormAssignmentRepository) DeleteByID(ctx context.Context, assignmentID kernel.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", assignmentID.Bytes()).
		Delete(&AssignmentDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("assignmentId", assignmentID)
	}

	return nil
}

// DeleteByTriple removes the assignment matching the exact triple.
func (r *GormAssignmentRepository) DeleteByTriple(
	ctx context.Context,
	productID kernel.UUID,
	warehouseBUCode string,
	storeID kernel.UUID,
) error {
	result := r.db.WithContext(ctx).
		Where("product_id = ? AND warehouse_business_unit_code = ? AND store_id = ?",
			productID.Bytes(), warehouseBUCode, storeID.Bytes()).
		Delete(&AssignmentDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("assignment", tripleKey(productID, warehouseBUCode, storeID))
	}

	return nil
}

func tripleKey(productID kernel.UUID, warehouseBUCode string, storeID kernel.UUID) string {
	return fmt.Sprintf("%s/%s/%s", productID, warehouseBUCode, storeID)
}

func toDomainSlice(dtos []AssignmentDTO) ([]*fulfillment.Assignment, error) {
	assignments := make([]*fulfillment.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}
