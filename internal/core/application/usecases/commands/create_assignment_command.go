package commands

import (
	"errors"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/pkg/guard"
)

// ErrCreateAssignmentCommandIsNotConstructed is returned when handling a
// command that was not created through its constructor.
var ErrCreateAssignmentCommandIsNotConstructed = errors.New(
	"CreateAssignmentCommand must be created via NewCreateAssignmentCommand constructor",
)

// CreateAssignmentCommand represents a request to link a product, a warehouse
// and a store into a fulfillment assignment.
//
// Example:
//
//	cmd, err := NewCreateAssignmentCommand(productID, "MWH.001", storeID)
//	if err != nil {
//	    return fmt.Errorf("invalid assignment data: %w", err)
//	}
//
//	handler := NewCreateAssignmentCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create assignment: %w", err)
//	}
type CreateAssignmentCommand struct { //nolint:recvcheck //using for validation
	productID       kernel.UUID
	warehouseBUCode string
	storeID         kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateAssignmentCommand creates a command to link a product, a warehouse
// and a store. Validates that both identifiers are constructed and the
// business-unit code is non-empty.
func NewCreateAssignmentCommand(productID kernel.UUID, warehouseBUCode string, storeID kernel.UUID) (CreateAssignmentCommand, error) {
	command := CreateAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setWarehouseBUCode(warehouseBUCode),
		command.setStoreID(storeID),
	); err != nil {
		return CreateAssignmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateAssignmentCommandIsNotConstructed if validation fails.
func (c CreateAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAssignmentCommandIsNotConstructed)
}

// ProductID returns the product identifier from the command.
func (c CreateAssignmentCommand) ProductID() kernel.UUID {
	return c.productID
}

// WarehouseBUCode returns the warehouse business-unit code from the command.
func (c CreateAssignmentCommand) WarehouseBUCode() string {
	return c.warehouseBUCode
}

// StoreID returns the store identifier from the command.
func (c CreateAssignmentCommand) StoreID() kernel.UUID {
	return c.storeID
}

func (c *CreateAssignmentCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateAssignmentCommand) setWarehouseBUCode(warehouseBUCode string) error {
	if warehouseBUCode == "" {
		return warehouse.ErrBusinessUnitCodeIsRequired
	}

	c.warehouseBUCode = warehouseBUCode
	return nil
}

func (c *CreateAssignmentCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}

	c.storeID = storeID
	return nil
}
