package commands

import (
	"context"

	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/core/domain/services"
	"fulfilment/internal/core/ports"
	"fulfilment/internal/pkg/errs"
)

// ReplaceWarehouseCommandHandler handles warehouse replacement, a two-phase
// operation. Phase one validates the replacement against the existing
// warehouse (capacity must hold the current stock, stock must carry over
// exactly, the new location must exist) and archives the existing record.
// Phase two re-checks the new location's limits against the post-archive
// active set and creates the replacement under the same business-unit code.
//
// The archive is persisted before the phase-two checks so the old warehouse's
// capacity stops counting against its location. A phase-two failure commits
// the archive and reports the error: the old unit is gone and no replacement
// was created. Callers must treat a failed replace as "the old unit is
// archived," not as a no-op.
type ReplaceWarehouseCommandHandler struct {
	uowFactory WarehouseUoWFactory
	locations  ports.LocationResolver
}

// NewReplaceWarehouseCommandHandler creates a handler for warehouse replacement.
func NewReplaceWarehouseCommandHandler(uowFactory WarehouseUoWFactory, locations ports.LocationResolver) ReplaceWarehouseCommandHandler {
	return ReplaceWarehouseCommandHandler{
		uowFactory: uowFactory,
		locations:  locations,
	}
}

// Handle processes the replace command.
// Returns ObjectNotFoundError when no active warehouse carries the code or
// the new location is unknown, InvalidStateError when the new capacity cannot
// hold the existing stock or the stock does not carry over exactly, and
// LimitExceededError when the new location cannot take the replacement (in
// which case the existing warehouse stays archived).
func (h ReplaceWarehouseCommandHandler) Handle(ctx context.Context, command ReplaceWarehouseCommand) error {
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

	existing, err := warehouseRepo.FindActiveByCode(ctx, command.BusinessUnitCode())
	if err != nil {
		return err
	}

	if stock := existing.Stock(); stock != nil && command.Capacity() < *stock {
		return errs.NewInvalidStateError("capacity",
			"replacement for warehouse '"+command.BusinessUnitCode()+"' cannot accommodate the stock")
	}

	if !existing.StockMatches(command.Stock()) {
		return errs.NewInvalidStateError("stock",
			"replacement stock must match the stock of warehouse '"+command.BusinessUnitCode()+"'")
	}

	site, ok := h.locations.Resolve(command.Location())
	if !ok {
		return errs.NewObjectNotFoundError("location", command.Location())
	}

	// Phase one ends here: archive the existing record so its capacity stops
	// counting against its location before the new site is evaluated.
	if err = existing.Archive(); err != nil {
		return err
	}
	if err = warehouseRepo.Update(ctx, existing); err != nil {
		return err
	}

	active, err := warehouseRepo.FindActiveByLocation(ctx, command.Location())
	if err != nil {
		return err
	}

	policy := services.NewLocationPolicy()
	if err = policy.CheckWarehouseCount(site, active); err != nil {
		return h.commitArchiveAndReport(ctx, uow, err)
	}
	if err = policy.CheckAggregateCapacity(site, active, command.Capacity()); err != nil {
		return h.commitArchiveAndReport(ctx, uow, err)
	}

	replacement, err := warehouse.NewWarehouse(
		command.BusinessUnitCode(),
		command.Location(),
		command.Capacity(),
		command.Stock(),
	)
	if err != nil {
		return err
	}

	if err = warehouseRepo.Add(ctx, replacement); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// commitArchiveAndReport keeps the phase-one archive when a phase-two check
// fails: the archive write is committed and the check error is returned. A
// commit failure takes precedence since in that case nothing was persisted.
func (h ReplaceWarehouseCommandHandler) commitArchiveAndReport(ctx context.Context, uow WarehouseUoW, checkErr error) error {
	if err := uow.Commit(ctx); err != nil {
		return err
	}
	return checkErr
}
