package commands

import (
	"errors"

	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/pkg/guard"
)

// ErrArchiveWarehouseCommandIsNotConstructed is returned when handling a
// command that was not created through its constructor.
var ErrArchiveWarehouseCommandIsNotConstructed = errors.New(
	"ArchiveWarehouseCommand must be created via NewArchiveWarehouseCommand constructor",
)

// ArchiveWarehouseCommand represents a request to deactivate the active
// warehouse carrying the given business-unit code.
type ArchiveWarehouseCommand struct { //nolint:recvcheck //using for validation
	businessUnitCode string

	guard guard.ConstructorGuard
}

// NewArchiveWarehouseCommand creates a command to archive a warehouse.
// Validates that the business-unit code is non-empty.
func NewArchiveWarehouseCommand(businessUnitCode string) (ArchiveWarehouseCommand, error) {
	command := ArchiveWarehouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setBusinessUnitCode(businessUnitCode); err != nil {
		return ArchiveWarehouseCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrArchiveWarehouseCommandIsNotConstructed if validation fails.
func (c ArchiveWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrArchiveWarehouseCommandIsNotConstructed)
}

// BusinessUnitCode returns the business-unit code from the command.
func (c ArchiveWarehouseCommand) BusinessUnitCode() string {
	return c.businessUnitCode
}

func (c *ArchiveWarehouseCommand) setBusinessUnitCode(businessUnitCode string) error {
	if businessUnitCode == "" {
		return warehouse.ErrBusinessUnitCodeIsRequired
	}

	c.businessUnitCode = businessUnitCode
	return nil
}
