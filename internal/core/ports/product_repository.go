package ports

import (
	"context"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for products.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by identifier.
	// Returns an ObjectNotFoundError when no product matches.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll retrieves every product.
	GetAll(ctx context.Context) ([]*product.Product, error)

	// Delete removes the product with the given identifier.
	// Returns an ObjectNotFoundError when no product matches.
	Delete(ctx context.Context, id kernel.UUID) error
}
