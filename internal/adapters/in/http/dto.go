package http

import (
	"time"

	"fulfilment/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewWarehouseRequest carries the payload for creating a warehouse.
type NewWarehouseRequest struct {
	BusinessUnitCode string `json:"businessUnitCode"`
	Location         string `json:"location"`
	Capacity         int    `json:"capacity"`
	Stock            *int   `json:"stock,omitempty"`
}

// ReplaceWarehouseRequest carries the payload for replacing a warehouse.
// The replacement keeps the business-unit code of the warehouse it replaces.
type ReplaceWarehouseRequest struct {
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
	Stock    *int   `json:"stock,omitempty"`
}

// WarehouseResponse is the read model for a warehouse.
type WarehouseResponse struct {
	BusinessUnitCode string    `json:"businessUnitCode"`
	Location         string    `json:"location"`
	Capacity         int       `json:"capacity"`
	Stock            *int      `json:"stock,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// NewAssignmentRequest carries the payload for creating a fulfillment assignment.
type NewAssignmentRequest struct {
	ProductID                 string `json:"productId"`
	WarehouseBusinessUnitCode string `json:"warehouseBusinessUnitCode"`
	StoreID                   string `json:"storeId"`
}

// AssignmentResponse is the read model for a fulfillment assignment.
type AssignmentResponse struct {
	ID                        string    `json:"id"`
	ProductID                 string    `json:"productId"`
	WarehouseBusinessUnitCode string    `json:"warehouseBusinessUnitCode"`
	StoreID                   string    `json:"storeId"`
	CreatedAt                 time.Time `json:"createdAt"`
}

// NewProductRequest carries the payload for creating a product.
type NewProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

// ProductResponse is the read model for a product.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

// StoreRequest carries the payload for creating or updating a store.
type StoreRequest struct {
	Name                    string `json:"name"`
	QuantityProductsInStock int    `json:"quantityProductsInStock"`
}

// StoreResponse is the read model for a store.
type StoreResponse struct {
	ID                      string `json:"id"`
	Name                    string `json:"name"`
	QuantityProductsInStock int    `json:"quantityProductsInStock"`
}

func warehouseResponseFrom(w queries.WarehouseQueryResponse) WarehouseResponse {
	return WarehouseResponse{
		BusinessUnitCode: w.BusinessUnitCode,
		Location:         w.Location,
		Capacity:         w.Capacity,
		Stock:            w.Stock,
		CreatedAt:        w.CreatedAt,
	}
}

func assignmentResponseFrom(a queries.AssignmentQueryResponse) AssignmentResponse {
	return AssignmentResponse{
		ID:                        a.ID.String(),
		ProductID:                 a.ProductID.String(),
		WarehouseBusinessUnitCode: a.WarehouseBUCode,
		StoreID:                   a.StoreID.String(),
		CreatedAt:                 a.CreatedAt,
	}
}

func productResponseFrom(p queries.ProductQueryResponse) ProductResponse {
	return ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
	}
}

func storeResponseFrom(s queries.StoreQueryResponse) StoreResponse {
	return StoreResponse{
		ID:                      s.ID.String(),
		Name:                    s.Name,
		QuantityProductsInStock: s.QuantityProductsInStock,
	}
}
