package commands

import (
	"context"
)

// DeleteStoreCommandHandler handles store removal. No event is propagated on
// deletion; the legacy store manager only tracks creations and updates.
type DeleteStoreCommandHandler struct {
	uowFactory StoreUoWFactory
}

// NewDeleteStoreCommandHandler creates a handler for store deletion.
func NewDeleteStoreCommandHandler(uowFactory StoreUoWFactory) DeleteStoreCommandHandler {
	return DeleteStoreCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete command.
// Returns ObjectNotFoundError when no store carries the identifier.
func (h DeleteStoreCommandHandler) Handle(ctx context.Context, command DeleteStoreCommand) error {
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

	if err := uow.StoreRepository().Delete(ctx, command.StoreID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
