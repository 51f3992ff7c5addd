// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work scopes the repository operations of one business
// transaction to a single database transaction and tracks the aggregates
// modified along the way.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.WarehouseRepository().Add(ctx, warehouse); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"fulfilment/internal/adapters/out/postgres/assignmentrepo"
	"fulfilment/internal/adapters/out/postgres/productrepo"
	"fulfilment/internal/adapters/out/postgres/storerepo"
	"fulfilment/internal/adapters/out/postgres/warehouserepo"
	"fulfilment/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate records an aggregate modified during the unit of work.
// Warehouses are keyed by business-unit code, the other aggregates by the
// string form of their UUID.
type trackedAggregate struct {
	Key       string
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances backed by a shared GORM
// database connection. Each business operation gets a fresh instance with its
// own transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the fulfillment
// repositories. Repositories obtained from it run inside the active
// transaction when one has been started, and directly on the connection
// otherwise.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a database transaction. Calling Begin again while a
// transaction is active is a no-op; nested transactions are never created.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the active transaction. After commit the transaction is
// closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the active transaction. After rollback the transaction is
// closed and cannot be reused.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// WarehouseRepository provides warehouse persistence within the unit of work.
func (uow *GormUnitOfWork) WarehouseRepository() ports.WarehouseRepository {
	return warehouserepo.NewGormWarehouseRepository(uow.conn(), uow)
}

// AssignmentRepository provides assignment persistence within the unit of work.
func (uow *GormUnitOfWork) AssignmentRepository() ports.AssignmentRepository {
	return assignmentrepo.NewGormAssignmentRepository(uow.conn(), uow)
}

// ProductRepository provides product persistence within the unit of work.
func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn(), uow)
}

// StoreRepository provides store persistence within the unit of work.
func (uow *GormUnitOfWork) StoreRepository() ports.StoreRepository {
	return storerepo.NewGormStoreRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate as modified within this unit of work.
// Repository implementations call this when aggregates are added or updated,
// enabling post-transaction processing such as event publication.
func (uow *GormUnitOfWork) TrackAggregate(key string, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		Key:       key,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
