package queries

import (
	"errors"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/guard"
)

// ErrGetAllStoresQueryIsNotConstructed is returned when handling a query
// that was not created through its constructor.
var ErrGetAllStoresQueryIsNotConstructed = errors.New(
	"GetAllStoresQuery must be created via NewGetAllStoresQuery constructor",
)

// GetAllStoresQuery retrieves every store.
type GetAllStoresQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllStoresQuery creates a query to retrieve all stores.
func NewGetAllStoresQuery() GetAllStoresQuery {
	return GetAllStoresQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllStoresQueryIsNotConstructed if validation fails.
func (q GetAllStoresQuery) Validate() error {
	return q.guard.Validate(ErrGetAllStoresQueryIsNotConstructed)
}

// StoreQueryResponse represents store information in the read model.
type StoreQueryResponse struct {
	ID                      kernel.UUID
	Name                    string
	QuantityProductsInStock int
}
