package storerepo

import (
	"context"
	"errors"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/store"
	"fulfilment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStoreRepository implements StoreRepository using GORM.
type GormStoreRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormStoreRepository creates a new GORM store repository.
func NewGormStoreRepository(db *gorm.DB, tracker aggregateTracker) *GormStoreRepository {
	return &GormStoreRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new store to the database.
func (r *GormStoreRepository) Add(ctx context.Context, aggregate *store.Store) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("storeId", aggregate.ID(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves a store by its identifier.
func (r *GormStoreRepository) Get(ctx context.Context, storeID kernel.UUID) (*store.Store, error) {
	var dto StoreDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", storeID.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("storeId", storeID)
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every store ordered by name.
func (r *GormStoreRepository) GetAll(ctx context.Context) ([]*store.Store, error) {
	var dtos []StoreDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	stores := make([]*store.Store, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}

	return stores, nil
}

// Update persists changes to an existing store.
func (r *GormStoreRepository) Update(ctx context.Context, aggregate *store.Store) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&StoreDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"name":                       aggregate.Name(),
			"quantity_products_in_stock": aggregate.QuantityProductsInStock(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("storeId", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Delete removes the store with the given identifier.
func (r *GormStoreRepository) Delete(ctx context.Context, storeID kernel.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", storeID.Bytes()).
		Delete(&StoreDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("storeId", storeID)
	}

	return nil
}
