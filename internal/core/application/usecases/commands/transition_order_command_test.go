package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewTransitionOrderCommand(order.Service, 7, order.InProgress)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, order.Service, cmd.Kind())
	assert.Equal(t, int64(7), cmd.OrderID())
	assert.Equal(t, order.InProgress, cmd.Target())
	_, hasNotes := cmd.Notes()
	assert.False(t, hasNotes)
}

func TestNewTransitionOrderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewTransitionOrderCommand(order.UnknownKind, 0, order.Unknown)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "orderID")
}

func TestTransitionOrderCommand_WithNotes(t *testing.T) {
	cmd, err := commands.NewTransitionOrderCommand(order.Delivery, 7, order.OnWay)
	require.NoError(t, err)

	withNotes := cmd.WithNotes("")

	notes, ok := withNotes.Notes()
	assert.True(t, ok, "empty notes still clear the field")
	assert.Empty(t, notes)
	_, original := cmd.Notes()
	assert.False(t, original, "WithNotes must not modify the receiver")
}

func TestTransitionOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.TransitionOrderCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrTransitionOrderCommandIsNotConstructed)
}
