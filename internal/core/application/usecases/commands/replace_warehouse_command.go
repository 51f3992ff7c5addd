package commands

import (
	"errors"

	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/pkg/guard"
)

// ErrReplaceWarehouseCommandIsNotConstructed is returned when handling a
// command that was not created through its constructor.
var ErrReplaceWarehouseCommandIsNotConstructed = errors.New(
	"ReplaceWarehouseCommand must be created via NewReplaceWarehouseCommand constructor",
)

// ReplaceWarehouseCommand represents a request to supersede the active
// warehouse carrying the given business-unit code with a new one under the
// same code. Replacement is a location or capacity change, never a stock
// change: the new stock must equal the existing stock exactly.
type ReplaceWarehouseCommand struct { //nolint:recvcheck //using for validation
	businessUnitCode string
	location         string
	capacity         int
	stock            *int

	guard guard.ConstructorGuard
}

// NewReplaceWarehouseCommand creates a command to replace a warehouse.
// Validates the same field constraints as warehouse creation.
func NewReplaceWarehouseCommand(businessUnitCode string, location string, capacity int, stock *int) (ReplaceWarehouseCommand, error) {
	command := ReplaceWarehouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBusinessUnitCode(businessUnitCode),
		command.setLocation(location),
		command.setCapacity(capacity),
		command.setStock(stock),
	); err != nil {
		return ReplaceWarehouseCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReplaceWarehouseCommandIsNotConstructed if validation fails.
func (c ReplaceWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrReplaceWarehouseCommandIsNotConstructed)
}

// BusinessUnitCode returns the business-unit code from the command.
func (c ReplaceWarehouseCommand) BusinessUnitCode() string {
	return c.businessUnitCode
}

// Location returns the replacement's location identifier from the command.
func (c ReplaceWarehouseCommand) Location() string {
	return c.location
}

// Capacity returns the replacement's capacity from the command.
func (c ReplaceWarehouseCommand) Capacity() int {
	return c.capacity
}

// Stock returns the replacement's optional stock from the command.
func (c ReplaceWarehouseCommand) Stock() *int {
	return c.stock
}

func (c *ReplaceWarehouseCommand) setBusinessUnitCode(businessUnitCode string) error {
	if businessUnitCode == "" {
		return warehouse.ErrBusinessUnitCodeIsRequired
	}

	c.businessUnitCode = businessUnitCode
	return nil
}

func (c *ReplaceWarehouseCommand) setLocation(location string) error {
	if location == "" {
		return warehouse.ErrLocationIsRequired
	}

	c.location = location
	return nil
}

func (c *ReplaceWarehouseCommand) setCapacity(capacity int) error {
	if capacity <= 0 {
		return warehouse.ErrCapacityIsInvalid
	}

	c.capacity = capacity
	return nil
}

func (c *ReplaceWarehouseCommand) setStock(stock *int) error {
	if stock != nil && *stock < 0 {
		return warehouse.ErrStockIsInvalid
	}

	c.stock = stock
	return nil
}
