// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"fulfilment/internal/pkg/guard"
)

// ErrGetAllWarehousesQueryIsNotConstructed is returned when handling a query
// that was not created through its constructor.
var ErrGetAllWarehousesQueryIsNotConstructed = errors.New(
	"GetAllWarehousesQuery must be created via NewGetAllWarehousesQuery constructor",
)

// GetAllWarehousesQuery retrieves every active warehouse.
// Archived warehouses never appear in the read model.
//
// Example:
//
//	query := NewGetAllWarehousesQuery()
//	handler := NewGetAllWarehousesQueryHandler(db)
//
//	warehouses, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve warehouses: %w", err)
//	}
type GetAllWarehousesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllWarehousesQuery creates a query to retrieve all active warehouses.
func NewGetAllWarehousesQuery() GetAllWarehousesQuery {
	return GetAllWarehousesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllWarehousesQueryIsNotConstructed if validation fails.
func (q GetAllWarehousesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllWarehousesQueryIsNotConstructed)
}

// WarehouseQueryResponse represents warehouse information in the read model.
type WarehouseQueryResponse struct {
	BusinessUnitCode string
	Location         string
	Capacity         int
	Stock            *int
	CreatedAt        time.Time
}
