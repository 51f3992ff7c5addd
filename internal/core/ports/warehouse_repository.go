// Package ports defines the contracts between the domain core and the
// infrastructure adapters: repositories, the static location resolver, the
// legacy store-event publisher and the unit of work. These interfaces enable
// dependency inversion and substitution with fakes in tests.
package ports

import (
	"context"

	"fulfilment/internal/core/domain/model/warehouse"
)

// WarehouseRepository defines the persistence contract for warehouse aggregates.
// All lookups are scoped to active warehouses: an archived warehouse is
// invisible to every query except the physical row it occupies.
type WarehouseRepository interface {
	// GetAllActive retrieves every warehouse whose archive timestamp is unset.
	GetAllActive(ctx context.Context) ([]*warehouse.Warehouse, error)

	// FindActiveByCode retrieves the active warehouse with the given
	// business-unit code. Returns an ObjectNotFoundError when no active
	// warehouse carries the code; archived warehouses never match.
	FindActiveByCode(ctx context.Context, businessUnitCode string) (*warehouse.Warehouse, error)

	// FindActiveByLocation retrieves all active warehouses at the given location.
	FindActiveByLocation(ctx context.Context, location string) ([]*warehouse.Warehouse, error)

	// Add persists a new warehouse aggregate.
	Add(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Update persists changes to the stored record carrying the aggregate's
	// business-unit code, including the archive timestamp.
	Update(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Remove hard-deletes the stored record. No core invariant invokes this;
	// it exists for administrative cleanup only.
	Remove(ctx context.Context, aggregate *warehouse.Warehouse) error
}
