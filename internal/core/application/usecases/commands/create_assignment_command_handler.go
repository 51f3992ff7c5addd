package commands

import (
	"context"
	"fmt"

	"fulfilment/internal/core/domain/model/fulfillment"
	"fulfilment/internal/core/domain/services"
	"fulfilment/internal/pkg/errs"
)

// CreateAssignmentCommandHandler handles the creation of fulfillment
// assignments. Verifies that all three parties exist (the warehouse must be
// active), that the exact triple is not already present, and that the three
// cardinality limits hold; the first violation aborts the operation.
//
// The per-store and per-warehouse limits count distinct warehouses and
// distinct products. When the warehouse already serves the store, the
// store fan-out check is skipped since a new product under an
// already-counted warehouse does not widen the fan-out; symmetrically for a
// product already stored in the warehouse.
type CreateAssignmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewCreateAssignmentCommandHandler creates a handler for assignment creation.
// Requires an AssignmentUoWFactory spanning all four repositories.
func NewCreateAssignmentCommandHandler(uowFactory AssignmentUoWFactory) CreateAssignmentCommandHandler {
	return CreateAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment creation command.
// Returns ObjectNotFoundError when the product, store or active warehouse is
// missing, ObjectAlreadyExistsError for a duplicate triple and
// LimitExceededError when a cardinality limit would be violated.
func (h CreateAssignmentCommandHandler) Handle(ctx context.Context, command CreateAssignmentCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.ProductRepository().Get(ctx, command.ProductID()); err != nil {
		return err
	}
	if _, err := uow.StoreRepository().Get(ctx, command.StoreID()); err != nil {
		return err
	}
	if _, err := uow.WarehouseRepository().FindActiveByCode(ctx, command.WarehouseBUCode()); err != nil {
		return err
	}

	assignmentRepo := uow.AssignmentRepository()

	exists, err := assignmentRepo.Exists(ctx, command.ProductID(), command.WarehouseBUCode(), command.StoreID())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewObjectAlreadyExistsError("assignment", fmt.Sprintf("%s/%s/%s",
			command.ProductID(), command.WarehouseBUCode(), command.StoreID()))
	}

	policy := services.NewFulfillmentPolicy()

	warehousesForProduct, err := assignmentRepo.CountWarehousesForProductAtStore(ctx, command.ProductID(), command.StoreID())
	if err != nil {
		return err
	}
	if err = policy.CheckProductStoreFanOut(warehousesForProduct); err != nil {
		return err
	}

	servesStore, err := assignmentRepo.IsWarehouseAssignedToStore(ctx, command.WarehouseBUCode(), command.StoreID())
	if err != nil {
		return err
	}
	if !servesStore {
		warehousesForStore, err := assignmentRepo.CountDistinctWarehousesForStore(ctx, command.StoreID())
		if err != nil {
			return err
		}
		if err = policy.CheckStoreFanOut(warehousesForStore); err != nil {
			return err
		}
	}

	inWarehouse, err := assignmentRepo.IsProductInWarehouse(ctx, command.ProductID(), command.WarehouseBUCode())
	if err != nil {
		return err
	}
	if !inWarehouse {
		productsInWarehouse, err := assignmentRepo.CountDistinctProductsForWarehouse(ctx, command.WarehouseBUCode())
		if err != nil {
			return err
		}
		if err = policy.CheckWarehouseProductBreadth(productsInWarehouse); err != nil {
			return err
		}
	}

	assignment, err := fulfillment.NewAssignment(command.ProductID(), command.WarehouseBUCode(), command.StoreID())
	if err != nil {
		return err
	}

	if err = assignmentRepo.Add(ctx, assignment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
