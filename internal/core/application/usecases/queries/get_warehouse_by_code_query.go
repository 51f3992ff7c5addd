package queries

import (
	"errors"

	"fulfilment/internal/pkg/errs"
	"fulfilment/internal/pkg/guard"
)

// ErrGetWarehouseByCodeQueryIsNotConstructed is returned when handling a
// query that was not created through its constructor.
var ErrGetWarehouseByCodeQueryIsNotConstructed = errors.New(
	"GetWarehouseByCodeQuery must be created via NewGetWarehouseByCodeQuery constructor",
)

// GetWarehouseByCodeQuery retrieves the active warehouse carrying a
// business-unit code.
type GetWarehouseByCodeQuery struct { //nolint:recvcheck //using for validation
	businessUnitCode string

	guard guard.ConstructorGuard
}

// NewGetWarehouseByCodeQuery creates a query for a single active warehouse.
// Validates that the business-unit code is non-empty.
func NewGetWarehouseByCodeQuery(businessUnitCode string) (GetWarehouseByCodeQuery, error) {
	query := GetWarehouseByCodeQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setBusinessUnitCode(businessUnitCode); err != nil {
		return GetWarehouseByCodeQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetWarehouseByCodeQueryIsNotConstructed if validation fails.
func (q GetWarehouseByCodeQuery) Validate() error {
	return q.guard.Validate(ErrGetWarehouseByCodeQueryIsNotConstructed)
}

// BusinessUnitCode returns the business-unit code from the query.
func (q GetWarehouseByCodeQuery) BusinessUnitCode() string {
	return q.businessUnitCode
}

func (q *GetWarehouseByCodeQuery) setBusinessUnitCode(businessUnitCode string) error {
	if businessUnitCode == "" {
		return errs.NewValueIsRequiredError("businessUnitCode")
	}

	q.businessUnitCode = businessUnitCode
	return nil
}
