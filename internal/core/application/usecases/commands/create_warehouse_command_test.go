package commands_test

import (
	"testing"

	"fulfilment/internal/core/application/usecases/commands"
	"fulfilment/internal/core/domain/model/warehouse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateWarehouseCommand(t *testing.T) {
	t.Run("creates a valid command with stock", func(t *testing.T) {
		cmd, err := commands.NewCreateWarehouseCommand("MWH.001", "ZWOLLE-001", 40, intPtr(10))

		require.NoError(t, err)
		assert.Equal(t, "MWH.001", cmd.BusinessUnitCode())
		assert.Equal(t, "ZWOLLE-001", cmd.Location())
		assert.Equal(t, 40, cmd.Capacity())
		require.NotNil(t, cmd.Stock())
		assert.Equal(t, 10, *cmd.Stock())
		assert.NoError(t, cmd.Validate())
	})

	t.Run("creates a valid command without stock", func(t *testing.T) {
		cmd, err := commands.NewCreateWarehouseCommand("MWH.012", "AMSTERDAM-001", 50, nil)

		require.NoError(t, err)
		assert.Nil(t, cmd.Stock())
	})

	t.Run("rejects invalid field values", func(t *testing.T) {
		tests := []struct {
			name             string
			businessUnitCode string
			location         string
			capacity         int
			stock            *int
			wantErr          error
		}{
			{"empty business unit code", "", "ZWOLLE-001", 40, nil, warehouse.ErrBusinessUnitCodeIsRequired},
			{"empty location", "MWH.001", "", 40, nil, warehouse.ErrLocationIsRequired},
			{"zero capacity", "MWH.001", "ZWOLLE-001", 0, nil, warehouse.ErrCapacityIsInvalid},
			{"negative capacity", "MWH.001", "ZWOLLE-001", -5, nil, warehouse.ErrCapacityIsInvalid},
			{"negative stock", "MWH.001", "ZWOLLE-001", 40, intPtr(-1), warehouse.ErrStockIsInvalid},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := commands.NewCreateWarehouseCommand(tt.businessUnitCode, tt.location, tt.capacity, tt.stock)

				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			})
		}
	})
}

func TestCreateWarehouseCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateWarehouseCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateWarehouseCommandIsNotConstructed)
}
