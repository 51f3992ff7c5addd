package commands_test

import (
	"testing"

	"fulfilment/internal/core/application/usecases/commands"
	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/warehouse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateAssignmentCommand(t *testing.T) {
	productID := kernel.NewUUID()
	storeID := kernel.NewUUID()

	t.Run("creates a valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateAssignmentCommand(productID, "MWH.001", storeID)

		require.NoError(t, err)
		assert.True(t, cmd.ProductID().IsEqual(productID))
		assert.Equal(t, "MWH.001", cmd.WarehouseBUCode())
		assert.True(t, cmd.StoreID().IsEqual(storeID))
		assert.NoError(t, cmd.Validate())
	})

	t.Run("rejects an unconstructed product id", func(t *testing.T) {
		var zeroID kernel.UUID

		_, err := commands.NewCreateAssignmentCommand(zeroID, "MWH.001", storeID)

		require.Error(t, err)
	})

	t.Run("rejects an empty warehouse code", func(t *testing.T) {
		_, err := commands.NewCreateAssignmentCommand(productID, "", storeID)

		require.Error(t, err)
		assert.ErrorIs(t, err, warehouse.ErrBusinessUnitCodeIsRequired)
	})

	t.Run("rejects an unconstructed store id", func(t *testing.T) {
		var zeroID kernel.UUID

		_, err := commands.NewCreateAssignmentCommand(productID, "MWH.001", zeroID)

		require.Error(t, err)
	})
}

func TestCreateAssignmentCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateAssignmentCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateAssignmentCommandIsNotConstructed)
}
