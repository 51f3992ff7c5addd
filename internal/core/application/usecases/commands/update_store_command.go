package commands

import (
	"errors"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/store"
	"fulfilment/internal/pkg/guard"
)

// ErrUpdateStoreCommandIsNotConstructed is returned when handling a
// command that was not created through its constructor.
var ErrUpdateStoreCommandIsNotConstructed = errors.New(
	"UpdateStoreCommand must be created via NewUpdateStoreCommand constructor",
)

// UpdateStoreCommand represents a request to change a store's name or stock
// quantity.
type UpdateStoreCommand struct { //nolint:recvcheck //using for validation
	storeID                 kernel.UUID
	name                    string
	quantityProductsInStock int

	guard guard.ConstructorGuard
}

// NewUpdateStoreCommand creates a command to update a store.
// Validates that the identifier is constructed, the name is non-empty and the
// quantity is not negative.
func NewUpdateStoreCommand(storeID kernel.UUID, name string, quantityProductsInStock int) (UpdateStoreCommand, error) {
	command := UpdateStoreCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStoreID(storeID),
		command.setName(name),
		command.setQuantityProductsInStock(quantityProductsInStock),
	); err != nil {
		return UpdateStoreCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateStoreCommandIsNotConstructed if validation fails.
func (c UpdateStoreCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStoreCommandIsNotConstructed)
}

// StoreID returns the store identifier from the command.
func (c UpdateStoreCommand) StoreID() kernel.UUID {
	return c.storeID
}

// Name returns the new store name from the command.
func (c UpdateStoreCommand) Name() string {
	return c.name
}

// QuantityProductsInStock returns the new stock quantity from the command.
func (c UpdateStoreCommand) QuantityProductsInStock() int {
	return c.quantityProductsInStock
}

func (c *UpdateStoreCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}

	c.storeID = storeID
	return nil
}

func (c *UpdateStoreCommand) setName(name string) error {
	if name == "" {
		return store.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateStoreCommand) setQuantityProductsInStock(quantity int) error {
	if quantity < 0 {
		return store.ErrQuantityIsInvalid
	}

	c.quantityProductsInStock = quantity
	return nil
}
