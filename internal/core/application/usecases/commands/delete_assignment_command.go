package commands

import (
	"errors"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/guard"
)

// ErrDeleteAssignmentCommandIsNotConstructed is returned when handling a
// command that was not created through its constructor.
var ErrDeleteAssignmentCommandIsNotConstructed = errors.New(
	"DeleteAssignmentCommand must be created via NewDeleteAssignmentCommand constructor",
)

// DeleteAssignmentCommand represents a request to remove a fulfillment
// assignment by its surrogate identifier.
type DeleteAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteAssignmentCommand creates a command to delete an assignment by id.
func NewDeleteAssignmentCommand(assignmentID kernel.UUID) (DeleteAssignmentCommand, error) {
	command := DeleteAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setAssignmentID(assignmentID); err != nil {
		return DeleteAssignmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteAssignmentCommandIsNotConstructed if validation fails.
func (c DeleteAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the assignment identifier from the command.
func (c DeleteAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

func (c *DeleteAssignmentCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}
