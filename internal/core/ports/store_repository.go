package ports

import (
	"context"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/store"
)

// StoreRepository defines the persistence contract for stores.
type StoreRepository interface {
	// Add persists a new store.
	Add(ctx context.Context, aggregate *store.Store) error

	// Update persists changes to an existing store.
	Update(ctx context.Context, aggregate *store.Store) error

	// Get retrieves a store by identifier.
	// Returns an ObjectNotFoundError when no store matches.
	Get(ctx context.Context, id kernel.UUID) (*store.Store, error)

	// GetAll retrieves every store.
	GetAll(ctx context.Context) ([]*store.Store, error)

	// Delete removes the store with the given identifier.
	// Returns an ObjectNotFoundError when no store matches.
	Delete(ctx context.Context, id kernel.UUID) error
}
