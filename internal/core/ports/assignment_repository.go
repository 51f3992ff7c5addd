package ports

import (
	"context"

	"fulfilment/internal/core/domain/model/fulfillment"
	"fulfilment/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for fulfillment
// assignments. Besides row access it exposes the aggregate counts the
// cardinality checks are evaluated against; the counts follow "distinct"
// semantics where named so.
type AssignmentRepository interface {
	// Add persists a new assignment.
	Add(ctx context.Context, aggregate *fulfillment.Assignment) error

	// Get retrieves an assignment by its surrogate identifier.
	// Returns an ObjectNotFoundError when no assignment matches.
	Get(ctx context.Context, id kernel.UUID) (*fulfillment.Assignment, error)

	// GetAll retrieves every assignment.
	GetAll(ctx context.Context) ([]*fulfillment.Assignment, error)

	// FindByStore retrieves all assignments fulfilling the given store.
	FindByStore(ctx context.Context, storeID kernel.UUID) ([]*fulfillment.Assignment, error)

	// FindByWarehouse retrieves all assignments served by the given warehouse.
	FindByWarehouse(ctx context.Context, warehouseBUCode string) ([]*fulfillment.Assignment, error)

	// FindByProduct retrieves all assignments fulfilling the given product.
	FindByProduct(ctx context.Context, productID kernel.UUID) ([]*fulfillment.Assignment, error)

	// Exists reports whether the exact (product, warehouse, store) triple is present.
	Exists(ctx context.Context, productID kernel.UUID, warehouseBUCode string, storeID kernel.UUID) (bool, error)

	// CountWarehousesForProductAtStore counts the distinct warehouses
	// currently fulfilling the product at the store.
	CountWarehousesForProductAtStore(ctx context.Context, productID kernel.UUID, storeID kernel.UUID) (int, error)

	// CountDistinctWarehousesForStore counts the distinct warehouses
	// currently fulfilling the store, across all products.
	CountDistinctWarehousesForStore(ctx context.Context, storeID kernel.UUID) (int, error)

	// CountDistinctProductsForWarehouse counts the distinct products
	// currently stored in the warehouse, across all stores.
	CountDistinctProductsForWarehouse(ctx context.Context, warehouseBUCode string) (int, error)

	// IsWarehouseAssignedToStore reports whether the warehouse already
	// fulfills the store for any product.
	IsWarehouseAssignedToStore(ctx context.Context, warehouseBUCode string, storeID kernel.UUID) (bool, error)

	// IsProductInWarehouse reports whether the product is already stored in
	// the warehouse for any store.
	IsProductInWarehouse(ctx context.Context, productID kernel.UUID, warehouseBUCode string) (bool, error)

	// DeleteByID removes the assignment with the given identifier.
	// Returns an ObjectNotFoundError when no assignment matches.
	DeleteByID(ctx context.Context, id kernel.UUID) error

	// DeleteByTriple removes the assignment matching the exact triple.
	// Returns an ObjectNotFoundError when no assignment matches.
	DeleteByTriple(ctx context.Context, productID kernel.UUID, warehouseBUCode string, storeID kernel.UUID) error
}
