package productrepo

import (
	"context"
	"errors"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/product"
	"fulfilment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product to the database.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("productId", aggregate.ID(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves a product by its identifier.
func (r *GormProductRepository) Get(ctx context.Context, productID kernel.UUID) (*product.Product, error) {
	var dto ProductDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", productID.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("productId", productID)
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every product ordered by name.
func (r *GormProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}

// Delete removes the product with the given identifier.
func (r *GormProductRepository) Delete(ctx context.Context, productID kernel.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", productID.Bytes()).
		Delete(&ProductDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("productId", productID)
	}

	return nil
}
