package commands

import (
	"errors"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/guard"
)

// ErrDeleteStoreCommandIsNotConstructed is returned when handling a
// command that was not created through its constructor.
var ErrDeleteStoreCommandIsNotConstructed = errors.New(
	"DeleteStoreCommand must be created via NewDeleteStoreCommand constructor",
)

// DeleteStoreCommand represents a request to remove a store.
type DeleteStoreCommand struct { //nolint:recvcheck //using for validation
	storeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteStoreCommand creates a command to delete a store by id.
func NewDeleteStoreCommand(storeID kernel.UUID) (DeleteStoreCommand, error) {
	command := DeleteStoreCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setStoreID(storeID); err != nil {
		return DeleteStoreCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteStoreCommandIsNotConstructed if validation fails.
func (c DeleteStoreCommand) Validate() error {
	return c.guard.Validate(ErrDeleteStoreCommandIsNotConstructed)
}

// StoreID returns the store identifier from the command.
func (c DeleteStoreCommand) StoreID() kernel.UUID {
	return c.storeID
}

func (c *DeleteStoreCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}

	c.storeID = storeID
	return nil
}
