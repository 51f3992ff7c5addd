package commands_test

import (
	"testing"

	"fulfilment/internal/core/application/usecases/commands"
	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewArchiveWarehouseCommand(t *testing.T) {
	t.Run("creates a valid command", func(t *testing.T) {
		cmd, err := commands.NewArchiveWarehouseCommand("MWH.001")

		require.NoError(t, err)
		assert.Equal(t, "MWH.001", cmd.BusinessUnitCode())
	})

	t.Run("rejects an empty code", func(t *testing.T) {
		_, err := commands.NewArchiveWarehouseCommand("")

		require.Error(t, err)
		assert.ErrorIs(t, err, warehouse.ErrBusinessUnitCodeIsRequired)
	})
}

func TestArchiveWarehouseCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewArchiveWarehouseCommand("MWH.001")
	require.NoError(t, err)

	existing := mustWarehouse(t, "MWH.001", "ZWOLLE-001", 40, intPtr(10))

	mockRepo := new(MockWarehouseRepository)
	mockUoW := new(MockWarehouseUoW)
	mockFactory := new(MockWarehouseUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("WarehouseRepository").Return(mockRepo).Once(),
		mockRepo.On("FindActiveByCode", ctx, "MWH.001").Return(existing, nil).Once(),
		mockRepo.On("Update", ctx, existing).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewArchiveWarehouseCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.False(t, existing.IsActive())
	require.NotNil(t, existing.ArchivedAt())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestArchiveWarehouseCommandHandler_Handle_NotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewArchiveWarehouseCommand("MWH.999")
	require.NoError(t, err)

	mockRepo := new(MockWarehouseRepository)
	mockUoW := new(MockWarehouseUoW)
	mockFactory := new(MockWarehouseUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("WarehouseRepository").Return(mockRepo).Once(),
		mockRepo.On("FindActiveByCode", ctx, "MWH.999").
			Return(nil, errs.NewObjectNotFoundError("businessUnitCode", "MWH.999")).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewArchiveWarehouseCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockUoW.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestArchiveWarehouseCommandHandler_Handle_InvalidCommand(t *testing.T) {
	var invalidCmd commands.ArchiveWarehouseCommand

	handler := commands.NewArchiveWarehouseCommandHandler(new(MockWarehouseUoWFactory))

	err := handler.Handle(t.Context(), invalidCmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrArchiveWarehouseCommandIsNotConstructed)
}
