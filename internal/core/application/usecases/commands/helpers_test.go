package commands_test

import (
	"testing"

	"fulfilment/internal/core/domain/model/location"
	"fulfilment/internal/core/domain/model/warehouse"

	"github.com/stretchr/testify/require"
)

// Test data helpers shared by the handler tests in this package.

func mustLocation(t *testing.T, identifier string, maxWarehouses int, maxCapacity int) location.Location {
	t.Helper()

	site, err := location.NewLocation(identifier, maxWarehouses, maxCapacity)
	require.NoError(t, err)
	return site
}

func mustWarehouse(t *testing.T, businessUnitCode string, loc string, capacity int, stock *int) *warehouse.Warehouse {
	t.Helper()

	aggregate, err := warehouse.NewWarehouse(businessUnitCode, loc, capacity, stock)
	require.NoError(t, err)
	return aggregate
}

func intPtr(v int) *int {
	return &v
}
