package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompleteAfterPaymentCommand_Success(t *testing.T) {
	// Arrange
	orderID := kernel.NewUUID()

	// Act
	cmd, err := commands.NewCompleteAfterPaymentCommand(orderID)

	// Assert
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, orderID, cmd.OrderID())
}

func TestNewCompleteAfterPaymentCommand_InvalidOrderID(t *testing.T) {
	var invalidID kernel.UUID

	_, err := commands.NewCompleteAfterPaymentCommand(invalidID)
	require.Error(t, err)
}

func TestCompleteAfterPaymentCommand_Validate_ZeroValue(t *testing.T) {
	// Arrange
	var cmd commands.CompleteAfterPaymentCommand // zero value, not constructed via constructor

	// Act
	err := cmd.Validate()

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCompleteAfterPaymentCommandIsNotConstructed)
}
