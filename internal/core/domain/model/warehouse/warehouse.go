package warehouse

import (
	"errors"
	"time"

	"fulfilment/internal/pkg/errs"
	"fulfilment/internal/pkg/guard"
)

// Domain errors for warehouse operations.
var (
	// ErrBusinessUnitCodeIsRequired is returned when attempting to create a warehouse without a business-unit code.
	ErrBusinessUnitCodeIsRequired = errs.NewValueIsRequiredError("businessUnitCode")
	// ErrLocationIsRequired is returned when attempting to create a warehouse without a location identifier.
	ErrLocationIsRequired = errs.NewValueIsRequiredError("location")
	// ErrCapacityIsInvalid is returned when the capacity is not positive.
	ErrCapacityIsInvalid = errs.NewValueIsInvalidError("capacity")
	// ErrStockIsInvalid is returned when a recorded stock is negative.
	ErrStockIsInvalid = errs.NewValueIsInvalidError("stock")
	// ErrWarehouseIsNotConstructed is returned when using an improperly initialized Warehouse.
	ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse or RestoreWarehouse")
)

// Warehouse is the aggregate root for a physical fulfilment unit.
// It is identified externally by its business-unit code, which is unique
// among active warehouses; archived warehouses may leave their code behind
// for a later replacement to reuse.
//
// A warehouse is active while its archived timestamp is unset. Deactivation
// is a soft delete: Archive stamps the timestamp, the record is never removed
// by the core. Stock is optional; a nil stock means no stock has been
// recorded yet and is treated as absent by the capacity check.
type Warehouse struct {
	businessUnitCode string
	location         string
	capacity         int
	stock            *int
	createdAt        time.Time
	archivedAt       *time.Time

	guard guard.ConstructorGuard
}

// NewWarehouse creates a new active warehouse and stamps its creation time.
// The business-unit code and location must be non-empty, capacity must be
// positive and a recorded stock must not be negative. Cross-entity rules
// (code uniqueness, location limits, stock vs capacity) are enforced by the
// lifecycle command handlers, not here.
func NewWarehouse(businessUnitCode string, location string, capacity int, stock *int) (*Warehouse, error) {
	if err := validateFields(businessUnitCode, location, capacity, stock); err != nil {
		return nil, err
	}

	return &Warehouse{
		businessUnitCode: businessUnitCode,
		location:         location,
		capacity:         capacity,
		stock:            stock,
		createdAt:        time.Now().UTC(),
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// RestoreWarehouse reconstructs a warehouse from persisted state.
// Used by repository implementations when rehydrating aggregates.
func RestoreWarehouse(
	businessUnitCode string,
	location string,
	capacity int,
	stock *int,
	createdAt time.Time,
	archivedAt *time.Time,
) (*Warehouse, error) {
	if err := validateFields(businessUnitCode, location, capacity, stock); err != nil {
		return nil, err
	}

	return &Warehouse{
		businessUnitCode: businessUnitCode,
		location:         location,
		capacity:         capacity,
		stock:            stock,
		createdAt:        createdAt,
		archivedAt:       archivedAt,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the warehouse was created through a constructor.
func (w *Warehouse) Validate() error {
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

// BusinessUnitCode returns the stable external identifier of the warehouse.
func (w *Warehouse) BusinessUnitCode() string {
	return w.businessUnitCode
}

// Location returns the identifier of the physical site hosting the warehouse.
func (w *Warehouse) Location() string {
	return w.location
}

// Capacity returns the maximum number of units the warehouse can hold.
func (w *Warehouse) Capacity() int {
	return w.capacity
}

// Stock returns the recorded stock, or nil when no stock has been recorded.
func (w *Warehouse) Stock() *int {
	return w.stock
}

// CreatedAt returns the creation timestamp.
func (w *Warehouse) CreatedAt() time.Time {
	return w.createdAt
}

// ArchivedAt returns the archive timestamp, or nil while the warehouse is active.
func (w *Warehouse) ArchivedAt() *time.Time {
	return w.archivedAt
}

// IsActive reports whether the warehouse has not been archived.
func (w *Warehouse) IsActive() bool {
	return w.archivedAt == nil
}

// Archive soft-deletes the warehouse by stamping the archive timestamp.
// Archiving an already archived warehouse is an invalid transition.
func (w *Warehouse) Archive() error {
	if err := w.Validate(); err != nil {
		return err
	}
	if w.archivedAt != nil {
		return errs.NewInvalidStateError("archivedAt",
			"warehouse '"+w.businessUnitCode+"' is already archived")
	}

	now := time.Now().UTC()
	w.archivedAt = &now
	return nil
}

// StockMatches reports whether the recorded stock equals other, treating two
// absent stocks as equal. Used by Replace to enforce stock conservation.
func (w *Warehouse) StockMatches(other *int) bool {
	if w.stock == nil || other == nil {
		return w.stock == nil && other == nil
	}
	return *w.stock == *other
}

func validateFields(businessUnitCode string, location string, capacity int, stock *int) error {
	if businessUnitCode == "" {
		return ErrBusinessUnitCodeIsRequired
	}
	if location == "" {
		return ErrLocationIsRequired
	}
	if capacity <= 0 {
		return ErrCapacityIsInvalid
	}
	if stock != nil && *stock < 0 {
		return ErrStockIsInvalid
	}
	return nil
}
