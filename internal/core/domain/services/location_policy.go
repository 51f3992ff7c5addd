package services

import (
	"fulfilment/internal/core/domain/model/location"
	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/pkg/errs"
)

// LocationPolicy is a domain service holding the site-level predicates for
// warehouse placement. Both predicates evaluate the currently active
// warehouses at a site against the site's static limits; the caller supplies
// the active set, so the policy stays pure and independent of persistence.
type LocationPolicy struct{}

// NewLocationPolicy creates a LocationPolicy.
func NewLocationPolicy() LocationPolicy {
	return LocationPolicy{}
}

// CheckWarehouseCount verifies the site can host one more active warehouse.
func (LocationPolicy) CheckWarehouseCount(site location.Location, active []*warehouse.Warehouse) error {
	if len(active) >= site.MaxNumberOfWarehouses() {
		return errs.NewLimitExceededError(
			"warehouses at location "+site.Identifier(),
			site.MaxNumberOfWarehouses(),
			len(active),
		)
	}
	return nil
}

// CheckAggregateCapacity verifies that the sum of active capacities at the
// site plus the incoming warehouse's capacity stays within the site limit.
func (LocationPolicy) CheckAggregateCapacity(site location.Location, active []*warehouse.Warehouse, newCapacity int) error {
	total := newCapacity
	for _, w := range active {
		total += w.Capacity()
	}

	if total > site.MaxCapacity() {
		return errs.NewLimitExceededError(
			"aggregate capacity at location "+site.Identifier(),
			site.MaxCapacity(),
			total,
		)
	}
	return nil
}
