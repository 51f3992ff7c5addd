package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfilment/internal/adapters/out/postgres/assignmentrepo"
	"fulfilment/internal/adapters/out/postgres/productrepo"
	"fulfilment/internal/adapters/out/postgres/storerepo"
	"fulfilment/internal/adapters/out/postgres/warehouserepo"
	"fulfilment/internal/core/application/usecases/queries"
	"fulfilment/internal/core/domain/model/fulfillment"
	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/product"
	"fulfilment/internal/core/domain/model/store"
	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QueryHandlersIntegrationTestSuite exercises the read-side handlers against
// a real PostgreSQL database seeded through the write-side repositories.
type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&warehouserepo.WarehouseDTO{},
		&assignmentrepo.AssignmentDTO{},
		&productrepo.ProductDTO{},
		&storerepo.StoreDTO{},
	)
	suite.Require().NoError(err)
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE warehouses, assignments, products, stores").Error
	suite.Require().NoError(err)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetAllWarehouses_EmptyDatabase_ReturnsEmptySlice() {
	handler := queries.NewGetAllWarehousesQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewGetAllWarehousesQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetAllWarehouses_ExcludesArchivedAndOrdersByCode() {
	suite.seedWarehouse("BRA-002", "TILBURG-001", 20, intPtr(5))
	suite.seedWarehouse("BRA-001", "ZWOLLE-001", 30, nil)
	archived := suite.seedWarehouse("BRA-003", "HELMOND-001", 25, nil)

	err := archived.Archive()
	suite.Require().NoError(err)
	repo := warehouserepo.NewGormWarehouseRepository(suite.db, noopTracker{})
	err = repo.Update(context.Background(), archived)
	suite.Require().NoError(err)

	handler := queries.NewGetAllWarehousesQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), queries.NewGetAllWarehousesQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("BRA-001", result[0].BusinessUnitCode)
	suite.Equal("ZWOLLE-001", result[0].Location)
	suite.Nil(result[0].Stock)
	suite.Equal("BRA-002", result[1].BusinessUnitCode)
	suite.Require().NotNil(result[1].Stock)
	suite.Equal(5, *result[1].Stock)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetAllWarehouses_InvalidQuery_ReturnsError() {
	handler := queries.NewGetAllWarehousesQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.GetAllWarehousesQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAllWarehousesQuery constructor")
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetWarehouseByCode_ReturnsActiveWarehouse() {
	suite.seedWarehouse("GET-001", "AMSTERDAM-001", 40, intPtr(12))

	handler := queries.NewGetWarehouseByCodeQueryHandler(suite.db)
	query, err := queries.NewGetWarehouseByCodeQuery("GET-001")
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("GET-001", result.BusinessUnitCode)
	suite.Equal("AMSTERDAM-001", result.Location)
	suite.Equal(40, result.Capacity)
	suite.Require().NotNil(result.Stock)
	suite.Equal(12, *result.Stock)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetWarehouseByCode_ArchivedWarehouse_ReturnsNotFound() {
	archived := suite.seedWarehouse("GET-002", "AMSTERDAM-001", 40, nil)
	err := archived.Archive()
	suite.Require().NoError(err)
	repo := warehouserepo.NewGormWarehouseRepository(suite.db, noopTracker{})
	err = repo.Update(context.Background(), archived)
	suite.Require().NoError(err)

	handler := queries.NewGetWarehouseByCodeQueryHandler(suite.db)
	query, err := queries.NewGetWarehouseByCodeQuery("GET-002")
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetWarehouseByCode_UnknownCode_ReturnsNotFound() {
	handler := queries.NewGetWarehouseByCodeQueryHandler(suite.db)
	query, err := queries.NewGetWarehouseByCodeQuery("MISSING-001")
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetAssignments_NoFilters_ReturnsAll() {
	seeded := suite.seedAssignments()

	handler := queries.NewGetAssignmentsQueryHandler(suite.db)
	query, err := queries.NewGetAssignmentsQuery(nil, "", nil)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, len(seeded))
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetAssignments_FilterByStore() {
	seeded := suite.seedAssignments()
	storeID := seeded[0].StoreID()

	handler := queries.NewGetAssignmentsQueryHandler(suite.db)
	query, err := queries.NewGetAssignmentsQuery(&storeID, "", nil)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	for _, a := range result {
		suite.True(a.StoreID.IsEqual(storeID))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetAssignments_FilterByWarehouse() {
	suite.seedAssignments()

	handler := queries.NewGetAssignmentsQueryHandler(suite.db)
	query, err := queries.NewGetAssignmentsQuery(nil, "QRY-001", nil)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	for _, a := range result {
		suite.Equal("QRY-001", a.WarehouseBUCode)
	}
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetAssignments_FilterByProductAndWarehouse() {
	seeded := suite.seedAssignments()
	productID := seeded[0].ProductID()

	handler := queries.NewGetAssignmentsQueryHandler(suite.db)
	query, err := queries.NewGetAssignmentsQuery(nil, "QRY-001", &productID)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ProductID.IsEqual(productID))
	suite.Equal("QRY-001", result[0].WarehouseBUCode)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetAllProducts_ReturnsAllOrderedByName() {
	repo := productrepo.NewGormProductRepository(suite.db, noopTracker{})

	second, err := product.NewProduct(kernel.NewUUID(), "Bolts", "box of 100", decimal.NewFromFloat(3.50))
	suite.Require().NoError(err)
	first, err := product.NewProduct(kernel.NewUUID(), "Anvil", "", decimal.NewFromInt(120))
	suite.Require().NoError(err)

	suite.Require().NoError(repo.Add(context.Background(), second))
	suite.Require().NoError(repo.Add(context.Background(), first))

	handler := queries.NewGetAllProductsQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), queries.NewGetAllProductsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Anvil", result[0].Name)
	suite.True(result[0].Price.Equal(decimal.NewFromInt(120)))
	suite.Equal("Bolts", result[1].Name)
	suite.Equal("box of 100", result[1].Description)
	suite.True(result[1].Price.Equal(decimal.NewFromFloat(3.50)))
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetAllStores_ReturnsAllOrderedByName() {
	repo := storerepo.NewGormStoreRepository(suite.db, noopTracker{})

	second, err := store.NewStore(kernel.NewUUID(), "West End", 40)
	suite.Require().NoError(err)
	first, err := store.NewStore(kernel.NewUUID(), "Central", 15)
	suite.Require().NoError(err)

	suite.Require().NoError(repo.Add(context.Background(), second))
	suite.Require().NoError(repo.Add(context.Background(), first))

	handler := queries.NewGetAllStoresQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), queries.NewGetAllStoresQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Central", result[0].Name)
	suite.Equal(15, result[0].QuantityProductsInStock)
	suite.Equal("West End", result[1].Name)
	suite.Equal(40, result[1].QuantityProductsInStock)
}

// seedWarehouse persists an active warehouse and returns the aggregate.
func (suite *QueryHandlersIntegrationTestSuite) seedWarehouse(code, location string, capacity int, stock *int) *warehouse.Warehouse {
	w, err := warehouse.NewWarehouse(code, location, capacity, stock)
	suite.Require().NoError(err)

	repo := warehouserepo.NewGormWarehouseRepository(suite.db, noopTracker{})
	err = repo.Add(context.Background(), w)
	suite.Require().NoError(err)

	return w
}

// seedAssignments persists four assignments: two for one store, two spread
// over other stores, with warehouse QRY-001 fulfilling two different products.
func (suite *QueryHandlersIntegrationTestSuite) seedAssignments() []*fulfillment.Assignment {
	repo := assignmentrepo.NewGormAssignmentRepository(suite.db, noopTracker{})

	productA := kernel.NewUUID()
	productB := kernel.NewUUID()
	storeA := kernel.NewUUID()
	storeB := kernel.NewUUID()

	specs := []struct {
		productID kernel.UUID
		code      string
		storeID   kernel.UUID
	}{
		{productA, "QRY-001", storeA},
		{productB, "QRY-001", storeB},
		{productB, "QRY-002", storeA},
		{productA, "QRY-003", storeB},
	}

	assignments := make([]*fulfillment.Assignment, 0, len(specs))
	for _, spec := range specs {
		a, err := fulfillment.NewAssignment(spec.productID, spec.code, spec.storeID)
		suite.Require().NoError(err)
		err = repo.Add(context.Background(), a)
		suite.Require().NoError(err)
		assignments = append(assignments, a)
	}

	return assignments
}

func intPtr(v int) *int {
	return &v
}

// noopTracker satisfies the repositories' tracker requirement in query tests.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ string, _ any) {}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
