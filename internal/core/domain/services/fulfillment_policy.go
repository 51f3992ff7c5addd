package services

import (
	"fulfilment/internal/pkg/errs"
)

// Fulfillment cardinality limits.
const (
	// MaxWarehousesPerProductPerStore caps how many distinct warehouses may
	// fulfill one product for one store.
	MaxWarehousesPerProductPerStore = 2
	// MaxWarehousesPerStore caps how many distinct warehouses may fulfill one store.
	MaxWarehousesPerStore = 3
	// MaxProductsPerWarehouse caps how many distinct products one warehouse may store.
	MaxProductsPerWarehouse = 5
)

// FulfillmentPolicy is a domain service holding the cardinality predicates for
// fulfillment assignments. Each predicate is a pure function over a
// precomputed aggregate count, so the "distinct" semantics of the limits stay
// explicit and testable in isolation from persistence.
//
// The per-store and per-warehouse checks count distinct warehouses and
// distinct products respectively, not raw assignment rows. The caller is
// responsible for skipping those checks when the warehouse already serves the
// store (or the product is already stored in the warehouse), since in that
// case a new assignment does not increase the distinct count.
type FulfillmentPolicy struct{}

// NewFulfillmentPolicy creates a FulfillmentPolicy.
func NewFulfillmentPolicy() FulfillmentPolicy {
	return FulfillmentPolicy{}
}

// CheckProductStoreFanOut verifies that fewer than MaxWarehousesPerProductPerStore
// distinct warehouses currently fulfill the product at the store.
func (FulfillmentPolicy) CheckProductStoreFanOut(currentWarehouses int) error {
	if currentWarehouses >= MaxWarehousesPerProductPerStore {
		return errs.NewLimitExceededError(
			"warehouses fulfilling product for store",
			MaxWarehousesPerProductPerStore,
			currentWarehouses,
		)
	}
	return nil
}

// CheckStoreFanOut verifies that fewer than MaxWarehousesPerStore distinct
// warehouses currently fulfill the store.
func (FulfillmentPolicy) CheckStoreFanOut(currentWarehouses int) error {
	if currentWarehouses >= MaxWarehousesPerStore {
		return errs.NewLimitExceededError(
			"warehouses fulfilling store",
			MaxWarehousesPerStore,
			currentWarehouses,
		)
	}
	return nil
}

// CheckWarehouseProductBreadth verifies that the warehouse currently stores
// fewer than MaxProductsPerWarehouse distinct products.
func (FulfillmentPolicy) CheckWarehouseProductBreadth(currentProducts int) error {
	if currentProducts >= MaxProductsPerWarehouse {
		return errs.NewLimitExceededError(
			"products stored in warehouse",
			MaxProductsPerWarehouse,
			currentProducts,
		)
	}
	return nil
}
