package queries

import (
	"errors"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrGetAllProductsQueryIsNotConstructed is returned when handling a query
// that was not created through its constructor.
var ErrGetAllProductsQueryIsNotConstructed = errors.New(
	"GetAllProductsQuery must be created via NewGetAllProductsQuery constructor",
)

// GetAllProductsQuery retrieves every product in the catalog.
type GetAllProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllProductsQuery creates a query to retrieve all products.
func NewGetAllProductsQuery() GetAllProductsQuery {
	return GetAllProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllProductsQueryIsNotConstructed if validation fails.
func (q GetAllProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllProductsQueryIsNotConstructed)
}

// ProductQueryResponse represents product information in the read model.
type ProductQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       decimal.Decimal
}
