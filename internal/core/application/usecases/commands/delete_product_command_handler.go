package commands

import (
	"context"
)

// DeleteProductCommandHandler handles product removal.
type DeleteProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewDeleteProductCommandHandler creates a handler for product deletion.
func NewDeleteProductCommandHandler(uowFactory ProductUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete command.
// Returns ObjectNotFoundError when no product carries the identifier.
func (h DeleteProductCommandHandler) Handle(ctx context.Context, command DeleteProductCommand) error {
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

	if err := uow.ProductRepository().Delete(ctx, command.ProductID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
