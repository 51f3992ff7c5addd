package commands

import (
	"errors"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/store"
	"fulfilment/internal/pkg/guard"
)

// ErrCreateStoreCommandIsNotConstructed is returned when handling a
// command that was not created through its constructor.
var ErrCreateStoreCommandIsNotConstructed = errors.New(
	"CreateStoreCommand must be created via NewCreateStoreCommand constructor",
)

// CreateStoreCommand represents a request to register a new store.
// Automatically generates a unique identifier for the store.
type CreateStoreCommand struct { //nolint:recvcheck //using for validation
	storeID                 kernel.UUID
	name                    string
	quantityProductsInStock int

	guard guard.ConstructorGuard
}

// NewCreateStoreCommand creates a command to register a new store.
// Validates that the name is non-empty and the quantity is not negative.
func NewCreateStoreCommand(name string, quantityProductsInStock int) (CreateStoreCommand, error) {
	command := CreateStoreCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStoreID(kernel.NewUUID()),
		command.setName(name),
		command.setQuantityProductsInStock(quantityProductsInStock),
	); err != nil {
		return CreateStoreCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateStoreCommandIsNotConstructed if validation fails.
func (c CreateStoreCommand) Validate() error {
	return c.guard.Validate(ErrCreateStoreCommandIsNotConstructed)
}

// StoreID returns the generated store identifier.
func (c CreateStoreCommand) StoreID() kernel.UUID {
	return c.storeID
}

// Name returns the store name from the command.
func (c CreateStoreCommand) Name() string {
	return c.name
}

// QuantityProductsInStock returns the stock quantity from the command.
func (c CreateStoreCommand) QuantityProductsInStock() int {
	return c.quantityProductsInStock
}

func (c *CreateStoreCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}

	c.storeID = storeID
	return nil
}

func (c *CreateStoreCommand) setName(name string) error {
	if name == "" {
		return store.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateStoreCommand) setQuantityProductsInStock(quantity int) error {
	if quantity < 0 {
		return store.ErrQuantityIsInvalid
	}

	c.quantityProductsInStock = quantity
	return nil
}
