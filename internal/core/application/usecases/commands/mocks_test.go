package commands_test

import (
	"context"

	"fulfilment/internal/core/application/usecases/commands"
	"fulfilment/internal/core/domain/model/fulfillment"
	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/location"
	"fulfilment/internal/core/domain/model/product"
	"fulfilment/internal/core/domain/model/store"
	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations shared by the handler tests in this package.

type MockWarehouseRepository struct {
	mock.Mock
}

func (m *MockWarehouseRepository) GetAllActive(ctx context.Context) ([]*warehouse.Warehouse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*warehouse.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) FindActiveByCode(ctx context.Context, businessUnitCode string) (*warehouse.Warehouse, error) {
	args := m.Called(ctx, businessUnitCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) FindActiveByLocation(ctx context.Context, loc string) ([]*warehouse.Warehouse, error) {
	args := m.Called(ctx, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*warehouse.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) Add(ctx context.Context, aggregate *warehouse.Warehouse) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Update(ctx context.Context, aggregate *warehouse.Warehouse) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Remove(ctx context.Context, aggregate *warehouse.Warehouse) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) Add(ctx context.Context, aggregate *fulfillment.Assignment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*fulfillment.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fulfillment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetAll(ctx context.Context) ([]*fulfillment.Assignment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*fulfillment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) FindByStore(ctx context.Context, storeID kernel.UUID) ([]*fulfillment.Assignment, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*fulfillment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) FindByWarehouse(ctx context.Context, warehouseBUCode string) ([]*fulfillment.Assignment, error) {
	args := m.Called(ctx, warehouseBUCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*fulfillment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) FindByProduct(ctx context.Context, productID kernel.UUID) ([]*fulfillment.Assignment, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*fulfillment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) Exists(ctx context.Context, productID kernel.UUID, warehouseBUCode string, storeID kernel.UUID) (bool, error) {
	args := m.Called(ctx, productID, warehouseBUCode, storeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAssignmentRepository) CountWarehousesForProductAtStore(ctx context.Context, productID kernel.UUID, storeID kernel.UUID) (int, error) {
	args := m.Called(ctx, productID, storeID)
	return args.Int(0), args.Error(1)
}

func (m *MockAssignmentRepository) CountDistinctWarehousesForStore(ctx context.Context, storeID kernel.UUID) (int, error) {
	args := m.Called(ctx, storeID)
	return args.Int(0), args.Error(1)
}

func (m *MockAssignmentRepository) CountDistinctProductsForWarehouse(ctx context.Context, warehouseBUCode string) (int, error) {
	args := m.Called(ctx, warehouseBUCode)
	return args.Int(0), args.Error(1)
}

func (m *MockAssignmentRepository) IsWarehouseAssignedToStore(ctx context.Context, warehouseBUCode string, storeID kernel.UUID) (bool, error) {
	args := m.Called(ctx, warehouseBUCode, storeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAssignmentRepository) IsProductInWarehouse(ctx context.Context, productID kernel.UUID, warehouseBUCode string) (bool, error) {
	args := m.Called(ctx, productID, warehouseBUCode)
	return args.Bool(0), args.Error(1)
}

func (m *MockAssignmentRepository) DeleteByID(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAssignmentRepository) DeleteByTriple(ctx context.Context, productID kernel.UUID, warehouseBUCode string, storeID kernel.UUID) error {
	args := m.Called(ctx, productID, warehouseBUCode, storeID)
	return args.Error(0)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) Add(ctx context.Context, aggregate *store.Store) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockStoreRepository) Update(ctx context.Context, aggregate *store.Store) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockStoreRepository) Get(ctx context.Context, id kernel.UUID) (*store.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Store), args.Error(1)
}

func (m *MockStoreRepository) GetAll(ctx context.Context) ([]*store.Store, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.Store), args.Error(1)
}

func (m *MockStoreRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockLocationResolver struct {
	mock.Mock
}

func (m *MockLocationResolver) Resolve(identifier string) (location.Location, bool) {
	args := m.Called(identifier)
	return args.Get(0).(location.Location), args.Bool(1)
}

type MockStoreEventPublisher struct {
	mock.Mock
}

func (m *MockStoreEventPublisher) Publish(ctx context.Context, event store.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockWarehouseUoW struct {
	mock.Mock
}

func (m *MockWarehouseUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWarehouseUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWarehouseUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWarehouseUoW) WarehouseRepository() ports.WarehouseRepository {
	args := m.Called()
	return args.Get(0).(ports.WarehouseRepository)
}

type MockWarehouseUoWFactory struct {
	mock.Mock
}

func (m *MockWarehouseUoWFactory) Create() commands.WarehouseUoW {
	args := m.Called()
	return args.Get(0).(commands.WarehouseUoW)
}

type MockAssignmentUoW struct {
	mock.Mock
}

func (m *MockAssignmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignmentUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

func (m *MockAssignmentUoW) WarehouseRepository() ports.WarehouseRepository {
	args := m.Called()
	return args.Get(0).(ports.WarehouseRepository)
}

func (m *MockAssignmentUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockAssignmentUoW) StoreRepository() ports.StoreRepository {
	args := m.Called()
	return args.Get(0).(ports.StoreRepository)
}

type MockAssignmentUoWFactory struct {
	mock.Mock
}

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockProductUoW struct {
	mock.Mock
}

func (m *MockProductUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProductUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProductUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProductUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockProductUoWFactory struct {
	mock.Mock
}

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

type MockStoreUoW struct {
	mock.Mock
}

func (m *MockStoreUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStoreUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStoreUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStoreUoW) StoreRepository() ports.StoreRepository {
	args := m.Called()
	return args.Get(0).(ports.StoreRepository)
}

type MockStoreUoWFactory struct {
	mock.Mock
}

func (m *MockStoreUoWFactory) Create() commands.StoreUoW {
	args := m.Called()
	return args.Get(0).(commands.StoreUoW)
}
