package cmd

import (
	"fmt"

	httpin "fulfilment/internal/adapters/in/http"
	"fulfilment/internal/adapters/out/legacy"
	"fulfilment/internal/adapters/out/locations"
	"fulfilment/internal/adapters/out/postgres"
	"fulfilment/internal/core/application/usecases/commands"
	"fulfilment/internal/core/application/usecases/queries"
	"fulfilment/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires the adapters into the application use cases.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	locations  ports.LocationResolver
	publisher  ports.StoreEventPublisher
}

// NewCompositionRoot builds the object graph. Store events go to Kafka when a
// host is configured and are discarded otherwise.
func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	registry, err := locations.NewRegistry()
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to build location registry: %w", err)
	}

	var publisher ports.StoreEventPublisher
	if config.KafkaHost != "" {
		publisher, err = legacy.NewKafkaStoreEventPublisher(
			[]string{config.KafkaHost}, config.KafkaStoreEventsTopic)
		if err != nil {
			return CompositionRoot{}, fmt.Errorf("failed to build store event publisher: %w", err)
		}
	} else {
		publisher = legacy.NewNoopStoreEventPublisher()
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		locations:  registry,
		publisher:  publisher,
	}, nil
}

// CreateHTTPHandlers builds the handler bundle the HTTP server dispatches to.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateWarehouse:          c.CreateCreateWarehouseCommandHandler(),
		ArchiveWarehouse:         c.CreateArchiveWarehouseCommandHandler(),
		ReplaceWarehouse:         c.CreateReplaceWarehouseCommandHandler(),
		CreateAssignment:         c.CreateCreateAssignmentCommandHandler(),
		DeleteAssignment:         c.CreateDeleteAssignmentCommandHandler(),
		DeleteAssignmentByTriple: c.CreateDeleteAssignmentByTripleCommandHandler(),
		CreateProduct:            c.CreateCreateProductCommandHandler(),
		DeleteProduct:            c.CreateDeleteProductCommandHandler(),
		CreateStore:              c.CreateCreateStoreCommandHandler(),
		UpdateStore:              c.CreateUpdateStoreCommandHandler(),
		DeleteStore:              c.CreateDeleteStoreCommandHandler(),

		GetAllWarehouses:   c.CreateGetAllWarehousesQueryHandler(),
		GetWarehouseByCode: c.CreateGetWarehouseByCodeQueryHandler(),
		GetAssignments:     c.CreateGetAssignmentsQueryHandler(),
		GetAllProducts:     c.CreateGetAllProductsQueryHandler(),
		GetAllStores:       c.CreateGetAllStoresQueryHandler(),
	}
}

func (c *CompositionRoot) warehouseUoWFactory() commands.WarehouseUoWFactory {
	return FuncWarehouseUoWFactory(func() commands.WarehouseUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) assignmentUoWFactory() commands.AssignmentUoWFactory {
	return FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) storeUoWFactory() commands.StoreUoWFactory {
	return FuncStoreUoWFactory(func() commands.StoreUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateWarehouseCommandHandler() commands.CreateWarehouseCommandHandler {
	return commands.NewCreateWarehouseCommandHandler(c.warehouseUoWFactory(), c.locations)
}

func (c *CompositionRoot) CreateArchiveWarehouseCommandHandler() commands.ArchiveWarehouseCommandHandler {
	return commands.NewArchiveWarehouseCommandHandler(c.warehouseUoWFactory())
}

func (c *CompositionRoot) CreateReplaceWarehouseCommandHandler() commands.ReplaceWarehouseCommandHandler {
	return commands.NewReplaceWarehouseCommandHandler(c.warehouseUoWFactory(), c.locations)
}

func (c *CompositionRoot) CreateCreateAssignmentCommandHandler() commands.CreateAssignmentCommandHandler {
	return commands.NewCreateAssignmentCommandHandler(c.assignmentUoWFactory())
}

func (c *CompositionRoot) CreateDeleteAssignmentCommandHandler() commands.DeleteAssignmentCommandHandler {
	return commands.NewDeleteAssignmentCommandHandler(c.assignmentUoWFactory())
}

func (c *CompositionRoot) CreateDeleteAssignmentByTripleCommandHandler() commands.DeleteAssignmentByTripleCommandHandler {
	return commands.NewDeleteAssignmentByTripleCommandHandler(c.assignmentUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateCreateStoreCommandHandler() commands.CreateStoreCommandHandler {
	return commands.NewCreateStoreCommandHandler(c.storeUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateUpdateStoreCommandHandler() commands.UpdateStoreCommandHandler {
	return commands.NewUpdateStoreCommandHandler(c.storeUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateDeleteStoreCommandHandler() commands.DeleteStoreCommandHandler {
	return commands.NewDeleteStoreCommandHandler(c.storeUoWFactory())
}

func (c *CompositionRoot) CreateGetAllWarehousesQueryHandler() queries.GetAllWarehousesQueryHandler {
	return queries.NewGetAllWarehousesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWarehouseByCodeQueryHandler() queries.GetWarehouseByCodeQueryHandler {
	return queries.NewGetWarehouseByCodeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignmentsQueryHandler() queries.GetAssignmentsQueryHandler {
	return queries.NewGetAssignmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllProductsQueryHandler() queries.GetAllProductsQueryHandler {
	return queries.NewGetAllProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllStoresQueryHandler() queries.GetAllStoresQueryHandler {
	return queries.NewGetAllStoresQueryHandler(c.gormDB)
}

type FuncWarehouseUoWFactory func() commands.WarehouseUoW

func (f FuncWarehouseUoWFactory) Create() commands.WarehouseUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncStoreUoWFactory func() commands.StoreUoW

func (f FuncStoreUoWFactory) Create() commands.StoreUoW {
	return f()
}
