package commands

import (
	"context"
)

// DeleteAssignmentCommandHandler handles assignment removal by identifier.
// Deletion only relaxes the cardinality limits, so no constraint is
// re-checked here.
type DeleteAssignmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewDeleteAssignmentCommandHandler creates a handler for assignment deletion.
func NewDeleteAssignmentCommandHandler(uowFactory AssignmentUoWFactory) DeleteAssignmentCommandHandler {
	return DeleteAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete command.
// Returns ObjectNotFoundError when no assignment carries the identifier.
func (h DeleteAssignmentCommandHandler) Handle(ctx context.Context, command DeleteAssignmentCommand) error {
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

	if err := uow.AssignmentRepository().DeleteByID(ctx, command.AssignmentID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
