package commands

import (
	"context"
	"errors"

	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/core/domain/services"
	"fulfilment/internal/core/ports"
	"fulfilment/internal/pkg/errs"
)

// CreateWarehouseCommandHandler handles the business logic for opening a new
// warehouse. Runs the placement checks in a fixed order and persists the
// aggregate only when every check passes; the first failing check aborts the
// operation with no partial writes.
//
// Check order: active-code uniqueness, location existence, location
// warehouse-count limit, location aggregate-capacity limit, stock within own
// capacity.
type CreateWarehouseCommandHandler struct {
	uowFactory WarehouseUoWFactory
	locations  ports.LocationResolver
}

// NewCreateWarehouseCommandHandler creates a handler for warehouse creation.
// Requires a WarehouseUoWFactory for transactional persistence and a
// LocationResolver for the static site registry.
func NewCreateWarehouseCommandHandler(uowFactory WarehouseUoWFactory, locations ports.LocationResolver) CreateWarehouseCommandHandler {
	return CreateWarehouseCommandHandler{
		uowFactory: uowFactory,
		locations:  locations,
	}
}

// Handle processes the warehouse creation command.
// Returns ObjectAlreadyExistsError for a duplicate active code,
// ObjectNotFoundError for an unknown location, LimitExceededError when the
// site is full and InvalidStateError when the stock exceeds the capacity.
func (h CreateWarehouseCommandHandler) Handle(ctx context.Context, command CreateWarehouseCommand) error {
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

	warehouseRepo := uow.WarehouseRepository()

	_, err := warehouseRepo.FindActiveByCode(ctx, command.BusinessUnitCode())
	if err == nil {
		return errs.NewObjectAlreadyExistsError("businessUnitCode", command.BusinessUnitCode())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	site, ok := h.locations.Resolve(command.Location())
	if !ok {
		return errs.NewObjectNotFoundError("location", command.Location())
	}

	active, err := warehouseRepo.FindActiveByLocation(ctx, command.Location())
	if err != nil {
		return err
	}

	policy := services.NewLocationPolicy()
	if err = policy.CheckWarehouseCount(site, active); err != nil {
		return err
	}
	if err = policy.CheckAggregateCapacity(site, active, command.Capacity()); err != nil {
		return err
	}

	if stock := command.Stock(); stock != nil && *stock > command.Capacity() {
		return errs.NewInvalidStateError("stock",
			"warehouse '"+command.BusinessUnitCode()+"' cannot accommodate the stock")
	}

	aggregate, err := warehouse.NewWarehouse(
		command.BusinessUnitCode(),
		command.Location(),
		command.Capacity(),
		command.Stock(),
	)
	if err != nil {
		return err
	}

	if err = warehouseRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
