package commands

import (
	"errors"

	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/pkg/guard"
)

// ErrCreateWarehouseCommandIsNotConstructed is returned when handling a
// command that was not created through its constructor.
var ErrCreateWarehouseCommandIsNotConstructed = errors.New(
	"CreateWarehouseCommand must be created via NewCreateWarehouseCommand constructor",
)

// CreateWarehouseCommand represents a request to open a new warehouse at a
// known location. Encapsulates the business-unit code, the location
// identifier, the capacity and the optional initial stock.
//
// Example:
//
//	stock := 10
//	cmd, err := NewCreateWarehouseCommand("MWH.001", "ZWOLLE-001", 40, &stock)
//	if err != nil {
//	    return fmt.Errorf("invalid warehouse data: %w", err)
//	}
//
//	handler := NewCreateWarehouseCommandHandler(uowFactory, locations)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create warehouse: %w", err)
//	}
type CreateWarehouseCommand struct { //nolint:recvcheck //using for validation
	businessUnitCode string
	location         string
	capacity         int
	stock            *int

	guard guard.ConstructorGuard
}

// NewCreateWarehouseCommand creates a command to open a new warehouse.
// Validates that the code and location are non-empty, the capacity is
// positive and the stock, when recorded, is not negative.
func NewCreateWarehouseCommand(businessUnitCode string, location string, capacity int, stock *int) (CreateWarehouseCommand, error) {
	command := CreateWarehouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBusinessUnitCode(businessUnitCode),
		command.setLocation(location),
		command.setCapacity(capacity),
		command.setStock(stock),
	); err != nil {
		return CreateWarehouseCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateWarehouseCommandIsNotConstructed if validation fails.
func (c CreateWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrCreateWarehouseCommandIsNotConstructed)
}

// BusinessUnitCode returns the business-unit code from the command.
func (c CreateWarehouseCommand) BusinessUnitCode() string {
	return c.businessUnitCode
}

// Location returns the location identifier from the command.
func (c CreateWarehouseCommand) Location() string {
	return c.location
}

// Capacity returns the capacity from the command.
func (c CreateWarehouseCommand) Capacity() int {
	return c.capacity
}

// Stock returns the optional stock from the command.
func (c CreateWarehouseCommand) Stock() *int {
	return c.stock
}

func (c *CreateWarehouseCommand) setBusinessUnitCode(businessUnitCode string) error {
	if businessUnitCode == "" {
		return warehouse.ErrBusinessUnitCodeIsRequired
	}

	c.businessUnitCode = businessUnitCode
	return nil
}

func (c *CreateWarehouseCommand) setLocation(location string) error {
	if location == "" {
		return warehouse.ErrLocationIsRequired
	}

	c.location = location
	return nil
}

func (c *CreateWarehouseCommand) setCapacity(capacity int) error {
	if capacity <= 0 {
		return warehouse.ErrCapacityIsInvalid
	}

	c.capacity = capacity
	return nil
}

func (c *CreateWarehouseCommand) setStock(stock *int) error {
	if stock != nil && *stock < 0 {
		return warehouse.ErrStockIsInvalid
	}

	c.stock = stock
	return nil
}
