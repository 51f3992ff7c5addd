package queries

import (
	"errors"
	"time"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/guard"
)

// ErrGetAssignmentsQueryIsNotConstructed is returned when handling a query
// that was not created through its constructor.
var ErrGetAssignmentsQueryIsNotConstructed = errors.New(
	"GetAssignmentsQuery must be created via NewGetAssignmentsQuery constructor",
)

// GetAssignmentsQuery retrieves fulfillment assignments, optionally filtered
// by store, warehouse or product. Filters combine with AND; a query without
// filters retrieves every assignment.
type GetAssignmentsQuery struct {
	storeID         *kernel.UUID
	warehouseBUCode string
	productID       *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAssignmentsQuery creates a query for assignments. All filters are
// optional: pass nil identifiers and an empty code to retrieve everything.
func NewGetAssignmentsQuery(storeID *kernel.UUID, warehouseBUCode string, productID *kernel.UUID) (GetAssignmentsQuery, error) {
	query := GetAssignmentsQuery{
		storeID:         storeID,
		warehouseBUCode: warehouseBUCode,
		productID:       productID,
		guard:           guard.NewConstructorGuard(),
	}

	if storeID != nil {
		if err := storeID.Validate(); err != nil {
			return GetAssignmentsQuery{}, err
		}
	}
	if productID != nil {
		if err := productID.Validate(); err != nil {
			return GetAssignmentsQuery{}, err
		}
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAssignmentsQueryIsNotConstructed if validation fails.
func (q GetAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentsQueryIsNotConstructed)
}

// StoreID returns the optional store filter.
func (q GetAssignmentsQuery) StoreID() *kernel.UUID {
	return q.storeID
}

// WarehouseBUCode returns the optional warehouse filter.
func (q GetAssignmentsQuery) WarehouseBUCode() string {
	return q.warehouseBUCode
}

// ProductID returns the optional product filter.
func (q GetAssignmentsQuery) ProductID() *kernel.UUID {
	return q.productID
}

// AssignmentQueryResponse represents assignment information in the read model.
type AssignmentQueryResponse struct {
	ID              kernel.UUID
	ProductID       kernel.UUID
	WarehouseBUCode string
	StoreID         kernel.UUID
	CreatedAt       time.Time
}
