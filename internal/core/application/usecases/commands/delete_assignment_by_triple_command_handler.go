package commands

import (
	"context"
)

// DeleteAssignmentByTripleCommandHandler handles assignment removal by exact
// (product, warehouse, store) triple.
type DeleteAssignmentByTripleCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewDeleteAssignmentByTripleCommandHandler creates a handler for deletion by triple.
func NewDeleteAssignmentByTripleCommandHandler(uowFactory AssignmentUoWFactory) DeleteAssignmentByTripleCommandHandler {
	return DeleteAssignmentByTripleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete command.
// Returns ObjectNotFoundError when no assignment matches the triple.
func (h DeleteAssignmentByTripleCommandHandler) Handle(ctx context.Context, command DeleteAssignmentByTripleCommand) error {
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

	err := uow.AssignmentRepository().DeleteByTriple(ctx,
		command.ProductID(), command.WarehouseBUCode(), command.StoreID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
