package commands

import (
	"errors"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/guard"
)

// ErrDeleteProductCommandIsNotConstructed is returned when handling a
// command that was not created through its constructor.
var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

// DeleteProductCommand represents a request to remove a product.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteProductCommand creates a command to delete a product by id.
func NewDeleteProductCommand(productID kernel.UUID) (DeleteProductCommand, error) {
	command := DeleteProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setProductID(productID); err != nil {
		return DeleteProductCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteProductCommandIsNotConstructed if validation fails.
func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

// ProductID returns the product identifier from the command.
func (c DeleteProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *DeleteProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
