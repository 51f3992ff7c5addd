// Package store implements the Store entity and its change events.
// Stores are plain records with no cross-entity constraints; every change to
// a store is propagated to the legacy store manager as a post-commit event.
package store

import (
	"errors"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/errs"
	"fulfilment/internal/pkg/guard"
)

// Domain errors for store operations.
var (
	// ErrNameIsRequired is returned when attempting to create a store without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrQuantityIsInvalid is returned when the stocked-products quantity is negative.
	ErrQuantityIsInvalid = errs.NewValueIsInvalidError("quantityProductsInStock")
	// ErrStoreIsNotConstructed is returned when using an improperly initialized Store.
	ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore or RestoreStore")
)

// Store represents a retail outlet fulfilled from warehouses.
type Store struct {
	id                      kernel.UUID
	name                    string
	quantityProductsInStock int

	guard guard.ConstructorGuard
}

// NewStore creates a store with the given identity, name and stocked quantity.
func NewStore(id kernel.UUID, name string, quantityProductsInStock int) (*Store, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := validateFields(name, quantityProductsInStock); err != nil {
		return nil, err
	}

	return &Store{
		id:                      id,
		name:                    name,
		quantityProductsInStock: quantityProductsInStock,
		guard:                   guard.NewConstructorGuard(),
	}, nil
}

// RestoreStore reconstructs a store from persisted state.
func RestoreStore(id kernel.UUID, name string, quantityProductsInStock int) (*Store, error) {
	return NewStore(id, name, quantityProductsInStock)
}

// Validate ensures the store was created through a constructor.
func (s *Store) Validate() error {
	return s.guard.Validate(ErrStoreIsNotConstructed)
}

// ID returns the store identifier.
func (s *Store) ID() kernel.UUID {
	return s.id
}

// Name returns the store name.
func (s *Store) Name() string {
	return s.name
}

// QuantityProductsInStock returns how many products the store currently stocks.
func (s *Store) QuantityProductsInStock() int {
	return s.quantityProductsInStock
}

// Update changes the store's name and stocked quantity in place.
func (s *Store) Update(name string, quantityProductsInStock int) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := validateFields(name, quantityProductsInStock); err != nil {
		return err
	}

	s.name = name
	s.quantityProductsInStock = quantityProductsInStock
	return nil
}

func validateFields(name string, quantityProductsInStock int) error {
	if name == "" {
		return ErrNameIsRequired
	}
	if quantityProductsInStock < 0 {
		return ErrQuantityIsInvalid
	}
	return nil
}
