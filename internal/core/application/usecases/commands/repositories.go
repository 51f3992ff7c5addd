// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfilment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// WarehouseRepoFactory provides access to the warehouse repository within a transaction.
	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	// AssignmentRepoFactory provides access to the assignment repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// StoreRepoFactory provides access to the store repository within a transaction.
	StoreRepoFactory interface {
		StoreRepository() ports.StoreRepository
	}

	// WarehouseUoW manages transactions for warehouse lifecycle operations.
	// Every lifecycle command reads and writes warehouse aggregates only.
	WarehouseUoW interface {
		TxManager
		WarehouseRepoFactory
	}

	// WarehouseUoWFactory creates new warehouse unit of work instances.
	WarehouseUoWFactory interface {
		Create() WarehouseUoW
	}

	// AssignmentUoW manages transactions for fulfillment assignment operations.
	// Creating an assignment checks existence across products, stores and
	// warehouses before writing, so all four repositories share one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   assignmentRepo := uow.AssignmentRepository()
	//   warehouseRepo := uow.WarehouseRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	AssignmentUoW interface {
		TxManager
		AssignmentRepoFactory
		WarehouseRepoFactory
		ProductRepoFactory
		StoreRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// ProductUoW manages transactions for product-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// StoreUoW manages transactions for store-only operations.
	StoreUoW interface {
		TxManager
		StoreRepoFactory
	}

	// StoreUoWFactory creates new store unit of work instances.
	StoreUoWFactory interface {
		Create() StoreUoW
	}
)
