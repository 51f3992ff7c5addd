package ports

import (
	"context"
)

// UnitOfWork maintains a single database transaction across the repositories
// it hands out. A handler begins the transaction, performs its reads and
// writes through the repositories, and either commits or rolls back. Rollback
// after a successful commit only reports that no transaction is active, which
// makes the deferred-rollback pattern safe.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. After a successful commit
	// it only reports that no transaction is active.
	Rollback(ctx context.Context) error

	// WarehouseRepository returns a warehouse repository bound to the transaction.
	WarehouseRepository() WarehouseRepository

	// AssignmentRepository returns an assignment repository bound to the transaction.
	AssignmentRepository() AssignmentRepository

	// ProductRepository returns a product repository bound to the transaction.
	ProductRepository() ProductRepository

	// StoreRepository returns a store repository bound to the transaction.
	StoreRepository() StoreRepository
}

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}
