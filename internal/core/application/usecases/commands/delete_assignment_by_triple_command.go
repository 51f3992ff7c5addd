package commands

import (
	"errors"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/pkg/guard"
)

// ErrDeleteAssignmentByTripleCommandIsNotConstructed is returned when handling
// a command that was not created through its constructor.
var ErrDeleteAssignmentByTripleCommandIsNotConstructed = errors.New(
	"DeleteAssignmentByTripleCommand must be created via NewDeleteAssignmentByTripleCommand constructor",
)

// DeleteAssignmentByTripleCommand represents a request to remove the
// fulfillment assignment matching an exact (product, warehouse, store) triple.
type DeleteAssignmentByTripleCommand struct { //nolint:recvcheck //using for validation
	productID       kernel.UUID
	warehouseBUCode string
	storeID         kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteAssignmentByTripleCommand creates a command to delete an assignment
// by its exact triple.
func NewDeleteAssignmentByTripleCommand(productID kernel.UUID, warehouseBUCode string, storeID kernel.UUID) (DeleteAssignmentByTripleCommand, error) {
	command := DeleteAssignmentByTripleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setWarehouseBUCode(warehouseBUCode),
		command.setStoreID(storeID),
	); err != nil {
		return DeleteAssignmentByTripleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteAssignmentByTripleCommandIsNotConstructed if validation fails.
func (c DeleteAssignmentByTripleCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAssignmentByTripleCommandIsNotConstructed)
}

// ProductID returns the product identifier from the command.
func (c DeleteAssignmentByTripleCommand) ProductID() kernel.UUID {
	return c.productID
}

// WarehouseBUCode returns the warehouse business-unit code from the command.
func (c DeleteAssignmentByTripleCommand) WarehouseBUCode() string {
	return c.warehouseBUCode
}

// StoreID returns the store identifier from the command.
func (c DeleteAssignmentByTripleCommand) StoreID() kernel.UUID {
	return c.storeID
}

func (c *DeleteAssignmentByTripleCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *DeleteAssignmentByTripleCommand) setWarehouseBUCode(warehouseBUCode string) error {
	if warehouseBUCode == "" {
		return warehouse.ErrBusinessUnitCodeIsRequired
	}

	c.warehouseBUCode = warehouseBUCode
	return nil
}

func (c *DeleteAssignmentByTripleCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}

	c.storeID = storeID
	return nil
}
