// Package location defines the Location value object: a static physical site
// with fixed limits on how many warehouses it may host and how much aggregate
// capacity those warehouses may carry.
package location

import (
	"errors"
	"fmt"

	"fulfilment/internal/pkg/errs"
	"fulfilment/internal/pkg/guard"
)

// Domain errors for location construction.
var (
	// ErrIdentifierIsRequired is returned when attempting to create a location without an identifier.
	ErrIdentifierIsRequired = errs.NewValueIsRequiredError("identifier")
	// ErrMaxWarehousesIsInvalid is returned when the warehouse-count limit is not positive.
	ErrMaxWarehousesIsInvalid = errs.NewValueIsInvalidError("maxNumberOfWarehouses")
	// ErrMaxCapacityIsInvalid is returned when the aggregate-capacity limit is not positive.
	ErrMaxCapacityIsInvalid = errs.NewValueIsInvalidError("maxCapacity")
	// ErrLocationIsNotConstructed is returned when using an improperly initialized Location.
	ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")
)

// Location is an immutable value object describing a known physical site.
// It carries the two limits every warehouse mutation is validated against:
// the maximum number of active warehouses at the site and the maximum
// aggregate capacity across those warehouses.
//
// Locations are static reference data. They have no lifecycle and are never
// persisted; the location registry resolves identifiers to values of this type.
type Location struct { //nolint:recvcheck //using for validation
	identifier            string
	maxNumberOfWarehouses int
	maxCapacity           int

	guard guard.ConstructorGuard
}

// NewLocation creates a Location with the given identifier and limits.
// The identifier must be non-empty and both limits must be positive.
func NewLocation(identifier string, maxNumberOfWarehouses int, maxCapacity int) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loc.setIdentifier(identifier),
		loc.setMaxNumberOfWarehouses(maxNumberOfWarehouses),
		loc.setMaxCapacity(maxCapacity),
	); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate ensures the location was created through the constructor.
// Returns ErrLocationIsNotConstructed if validation fails.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Identifier returns the unique identifier of the location, e.g. "ZWOLLE-001".
func (l Location) Identifier() string {
	return l.identifier
}

// MaxNumberOfWarehouses returns how many active warehouses the location may host.
func (l Location) MaxNumberOfWarehouses() int {
	return l.maxNumberOfWarehouses
}

// MaxCapacity returns the maximum aggregate capacity permitted across all
// active warehouses at the location.
func (l Location) MaxCapacity() int {
	return l.maxCapacity
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return fmt.Sprintf("Location(%s, maxWarehouses=%d, maxCapacity=%d)",
		l.identifier, l.maxNumberOfWarehouses, l.maxCapacity)
}

func (l *Location) setIdentifier(identifier string) error {
	if identifier == "" {
		return ErrIdentifierIsRequired
	}

	l.identifier = identifier
	return nil
}

func (l *Location) setMaxNumberOfWarehouses(maxNumberOfWarehouses int) error {
	if maxNumberOfWarehouses <= 0 {
		return ErrMaxWarehousesIsInvalid
	}

	l.maxNumberOfWarehouses = maxNumberOfWarehouses
	return nil
}

func (l *Location) setMaxCapacity(maxCapacity int) error {
	if maxCapacity <= 0 {
		return ErrMaxCapacityIsInvalid
	}

	l.maxCapacity = maxCapacity
	return nil
}
