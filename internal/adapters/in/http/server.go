// Package http exposes the fulfillment use cases over a REST API.
// The server binds requests, builds commands and queries, and maps domain
// errors onto HTTP status codes; all business rules live in the core.
package http

import (
	"net/http"

	"fulfilment/internal/core/application/usecases/commands"
	"fulfilment/internal/core/application/usecases/queries"
	"fulfilment/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateWarehouse          commands.CreateWarehouseCommandHandler
	ArchiveWarehouse         commands.ArchiveWarehouseCommandHandler
	ReplaceWarehouse         commands.ReplaceWarehouseCommandHandler
	CreateAssignment         commands.CreateAssignmentCommandHandler
	DeleteAssignment         commands.DeleteAssignmentCommandHandler
	DeleteAssignmentByTriple commands.DeleteAssignmentByTripleCommandHandler
	CreateProduct            commands.CreateProductCommandHandler
	DeleteProduct            commands.DeleteProductCommandHandler
	CreateStore              commands.CreateStoreCommandHandler
	UpdateStore              commands.UpdateStoreCommandHandler
	DeleteStore              commands.DeleteStoreCommandHandler

	GetAllWarehouses   queries.GetAllWarehousesQueryHandler
	GetWarehouseByCode queries.GetWarehouseByCodeQueryHandler
	GetAssignments     queries.GetAssignmentsQueryHandler
	GetAllProducts     queries.GetAllProductsQueryHandler
	GetAllStores       queries.GetAllStoresQueryHandler
}

// Server coordinates between HTTP endpoints and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/warehouses", s.GetWarehouses)
	api.POST("/warehouses", s.CreateWarehouse)
	api.GET("/warehouses/:code", s.GetWarehouse)
	api.DELETE("/warehouses/:code", s.ArchiveWarehouse)
	api.POST("/warehouses/:code/replacement", s.ReplaceWarehouse)

	api.GET("/fulfillment", s.GetAssignments)
	api.POST("/fulfillment", s.CreateAssignment)
	api.DELETE("/fulfillment", s.DeleteAssignmentByTriple)
	api.DELETE("/fulfillment/:id", s.DeleteAssignment)

	api.GET("/products", s.GetProducts)
	api.POST("/products", s.CreateProduct)
	api.DELETE("/products/:id", s.DeleteProduct)

	api.GET("/stores", s.GetStores)
	api.POST("/stores", s.CreateStore)
	api.PUT("/stores/:id", s.UpdateStore)
	api.DELETE("/stores/:id", s.DeleteStore)
}

// GetWarehouses handles GET /api/v1/warehouses - lists all active warehouses.
func (s *Server) GetWarehouses(ctx echo.Context) error {
	query := queries.NewGetAllWarehousesQuery()

	warehouses, err := s.handlers.GetAllWarehouses.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]WarehouseResponse, len(warehouses))
	for i, w := range warehouses {
		response[i] = warehouseResponseFrom(w)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetWarehouse handles GET /api/v1/warehouses/:code - retrieves one active warehouse.
func (s *Server) GetWarehouse(ctx echo.Context) error {
	query, err := queries.NewGetWarehouseByCodeQuery(ctx.Param("code"))
	if err != nil {
		return respondError(ctx, err)
	}

	w, err := s.handlers.GetWarehouseByCode.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, warehouseResponseFrom(w))
}

// CreateWarehouse handles POST /api/v1/warehouses - creates a new warehouse.
func (s *Server) CreateWarehouse(ctx echo.Context) error {
	var request NewWarehouseRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	command, err := commands.NewCreateWarehouseCommand(
		request.BusinessUnitCode, request.Location, request.Capacity, request.Stock)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CreateWarehouse.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ArchiveWarehouse handles DELETE /api/v1/warehouses/:code - archives a warehouse.
func (s *Server) ArchiveWarehouse(ctx echo.Context) error {
	command, err := commands.NewArchiveWarehouseCommand(ctx.Param("code"))
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.ArchiveWarehouse.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReplaceWarehouse handles POST /api/v1/warehouses/:code/replacement - archives
// the warehouse and creates its successor under the same business-unit code.
func (s *Server) ReplaceWarehouse(ctx echo.Context) error {
	var request ReplaceWarehouseRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	command, err := commands.NewReplaceWarehouseCommand(
		ctx.Param("code"), request.Location, request.Capacity, request.Stock)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.ReplaceWarehouse.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetAssignments handles GET /api/v1/fulfillment - lists assignments,
// optionally filtered by storeId, warehouseCode and productId query parameters.
func (s *Server) GetAssignments(ctx echo.Context) error {
	storeID, err := optionalUUIDParam(ctx, "storeId")
	if err != nil {
		return respondBadRequest(ctx, "invalid storeId")
	}

	productID, err := optionalUUIDParam(ctx, "productId")
	if err != nil {
		return respondBadRequest(ctx, "invalid productId")
	}

	query, err := queries.NewGetAssignmentsQuery(storeID, ctx.QueryParam("warehouseCode"), productID)
	if err != nil {
		return respondError(ctx, err)
	}

	assignments, err := s.handlers.GetAssignments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]AssignmentResponse, len(assignments))
	for i, a := range assignments {
		response[i] = assignmentResponseFrom(a)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateAssignment handles POST /api/v1/fulfillment - assigns a product to a
// warehouse for a store.
func (s *Server) CreateAssignment(ctx echo.Context) error {
	var request NewAssignmentRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	productID, err := kernel.UUIDFromString(request.ProductID)
	if err != nil {
		return respondBadRequest(ctx, "invalid productId")
	}

	storeID, err := kernel.UUIDFromString(request.StoreID)
	if err != nil {
		return respondBadRequest(ctx, "invalid storeId")
	}

	command, err := commands.NewCreateAssignmentCommand(productID, request.WarehouseBusinessUnitCode, storeID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CreateAssignment.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// DeleteAssignment handles DELETE /api/v1/fulfillment/:id - removes an
// assignment by its surrogate identifier.
func (s *Server) DeleteAssignment(ctx echo.Context) error {
	assignmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid assignment id")
	}

	command, err := commands.NewDeleteAssignmentCommand(assignmentID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.DeleteAssignment.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteAssignmentByTriple handles DELETE /api/v1/fulfillment - removes the
// assignment identified by the productId, warehouseCode and storeId query
// parameters.
func (s *Server) DeleteAssignmentByTriple(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.QueryParam("productId"))
	if err != nil {
		return respondBadRequest(ctx, "invalid productId")
	}

	storeID, err := kernel.UUIDFromString(ctx.QueryParam("storeId"))
	if err != nil {
		return respondBadRequest(ctx, "invalid storeId")
	}

	command, err := commands.NewDeleteAssignmentByTripleCommand(productID, ctx.QueryParam("warehouseCode"), storeID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.DeleteAssignmentByTriple.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProducts handles GET /api/v1/products - lists all products.
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewGetAllProductsQuery()

	products, err := s.handlers.GetAllProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = productResponseFrom(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products - creates a new product.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var request NewProductRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	command, err := commands.NewCreateProductCommand(request.Name, request.Description, request.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CreateProduct.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// DeleteProduct handles DELETE /api/v1/products/:id - removes a product.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid product id")
	}

	command, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.DeleteProduct.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetStores handles GET /api/v1/stores - lists all stores.
func (s *Server) GetStores(ctx echo.Context) error {
	query := queries.NewGetAllStoresQuery()

	stores, err := s.handlers.GetAllStores.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]StoreResponse, len(stores))
	for i, st := range stores {
		response[i] = storeResponseFrom(st)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateStore handles POST /api/v1/stores - creates a new store.
func (s *Server) CreateStore(ctx echo.Context) error {
	var request StoreRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	command, err := commands.NewCreateStoreCommand(request.Name, request.QuantityProductsInStock)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CreateStore.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateStore handles PUT /api/v1/stores/:id - updates a store's name and
// stocked quantity.
func (s *Server) UpdateStore(ctx echo.Context) error {
	storeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid store id")
	}

	var request StoreRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	command, err := commands.NewUpdateStoreCommand(storeID, request.Name, request.QuantityProductsInStock)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.UpdateStore.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteStore handles DELETE /api/v1/stores/:id - removes a store.
func (s *Server) DeleteStore(ctx echo.Context) error {
	storeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid store id")
	}

	command, err := commands.NewDeleteStoreCommand(storeID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.DeleteStore.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// optionalUUIDParam parses a UUID query parameter, returning nil when absent.
func optionalUUIDParam(ctx echo.Context, name string) (*kernel.UUID, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil, err
	}

	return &id, nil
}
