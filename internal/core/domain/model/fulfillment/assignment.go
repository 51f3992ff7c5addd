package fulfillment

import (
	"errors"
	"time"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/errs"
	"fulfilment/internal/pkg/guard"
)

// Domain errors for assignment operations.
var (
	// ErrWarehouseCodeIsRequired is returned when attempting to create an assignment without a warehouse code.
	ErrWarehouseCodeIsRequired = errs.NewValueIsRequiredError("warehouseBusinessUnitCode")
	// ErrAssignmentIsNotConstructed is returned when using an improperly initialized Assignment.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment or RestoreAssignment")
)

// Assignment is the ternary relation linking a product, a warehouse and a
// store: the named warehouse fulfills the named product for the named store.
// The (product, warehouse, store) triple is unique; assignments are created
// and deleted, never updated in place.
type Assignment struct {
	id              kernel.UUID
	productID       kernel.UUID
	warehouseBUCode string
	storeID         kernel.UUID
	createdAt       time.Time

	guard guard.ConstructorGuard
}

// NewAssignment creates an assignment with a fresh surrogate identifier and
// stamps its creation time. Cardinality constraints are enforced by the
// create-assignment command handler, not here.
func NewAssignment(productID kernel.UUID, warehouseBUCode string, storeID kernel.UUID) (*Assignment, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}
	if warehouseBUCode == "" {
		return nil, ErrWarehouseCodeIsRequired
	}
	if err := storeID.Validate(); err != nil {
		return nil, err
	}

	return &Assignment{
		id:              kernel.NewUUID(),
		productID:       productID,
		warehouseBUCode: warehouseBUCode,
		storeID:         storeID,
		createdAt:       time.Now().UTC(),
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// RestoreAssignment reconstructs an assignment from persisted state.
func RestoreAssignment(
	id kernel.UUID,
	productID kernel.UUID,
	warehouseBUCode string,
	storeID kernel.UUID,
	createdAt time.Time,
) (*Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := productID.Validate(); err != nil {
		return nil, err
	}
	if warehouseBUCode == "" {
		return nil, ErrWarehouseCodeIsRequired
	}
	if err := storeID.Validate(); err != nil {
		return nil, err
	}

	return &Assignment{
		id:              id,
		productID:       productID,
		warehouseBUCode: warehouseBUCode,
		storeID:         storeID,
		createdAt:       createdAt,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the assignment was created through a constructor.
func (a *Assignment) Validate() error {
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// ID returns the surrogate identifier of the assignment.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// ProductID returns the identifier of the fulfilled product.
func (a *Assignment) ProductID() kernel.UUID {
	return a.productID
}

// WarehouseBusinessUnitCode returns the code of the fulfilling warehouse.
func (a *Assignment) WarehouseBusinessUnitCode() string {
	return a.warehouseBUCode
}

// StoreID returns the identifier of the fulfilled store.
func (a *Assignment) StoreID() kernel.UUID {
	return a.storeID
}

// CreatedAt returns the creation timestamp.
func (a *Assignment) CreatedAt() time.Time {
	return a.createdAt
}
