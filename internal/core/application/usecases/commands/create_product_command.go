package commands

import (
	"errors"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/product"
	"fulfilment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrCreateProductCommandIsNotConstructed is returned when handling a
// command that was not created through its constructor.
var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to register a new product.
// Automatically generates a unique identifier for the product.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	description string
	price       decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a new product.
// Validates that the name is non-empty and the price is not negative.
func NewCreateProductCommand(name string, description string, price decimal.Decimal) (CreateProductCommand, error) {
	command := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(kernel.NewUUID()),
		command.setName(name),
		command.setPrice(price),
	); err != nil {
		return CreateProductCommand{}, err
	}

	command.description = description
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateProductCommandIsNotConstructed if validation fails.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the generated product identifier.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product name from the command.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the product description from the command.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Price returns the product price from the command.
func (c CreateProductCommand) Price() decimal.Decimal {
	return c.price
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return product.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return product.ErrPriceIsInvalid
	}

	c.price = price
	return nil
}
