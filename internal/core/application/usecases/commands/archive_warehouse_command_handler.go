package commands

import (
	"context"
)

// ArchiveWarehouseCommandHandler handles warehouse deactivation.
// Archiving stamps the archive timestamp on the stored record; it never fails
// on capacity and leaves the row in place for historical reference.
type ArchiveWarehouseCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

// NewArchiveWarehouseCommandHandler creates a handler for warehouse archiving.
func NewArchiveWarehouseCommandHandler(uowFactory WarehouseUoWFactory) ArchiveWarehouseCommandHandler {
	return ArchiveWarehouseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the archive command.
// Returns ObjectNotFoundError when no active warehouse carries the code; an
// already archived warehouse is not found by definition.
func (h ArchiveWarehouseCommandHandler) Handle(ctx context.Context, command ArchiveWarehouseCommand) error {
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

	if err = existing.Archive(); err != nil {
		return err
	}

	if err = warehouseRepo.Update(ctx, existing); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
