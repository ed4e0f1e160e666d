package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderViaCodeCommand_Success(t *testing.T) {
	code := kernel.NewAccessCode()

	cmd, err := commands.NewUpdateOrderViaCodeCommand(order.Delivery, code.String(), order.OnWay, "  left at desk ")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, order.Delivery, cmd.Kind())
	assert.True(t, code.IsEqual(cmd.Code()))
	assert.Equal(t, order.OnWay, cmd.Target())
	assert.Equal(t, "left at desk", cmd.Notes())
}

func TestNewUpdateOrderViaCodeCommand_MalformedCode(t *testing.T) {
	for _, code := range []string{"", "not-a-code", "00000000-0000-0000-0000-000000000000"} {
		t.Run(code, func(t *testing.T) {
			_, err := commands.NewUpdateOrderViaCodeCommand(order.Delivery, code, order.OnWay, "")

			require.ErrorIs(t, err, queries.ErrInvalidOrExpiredCode)
		})
	}
}

func TestNewUpdateOrderViaCodeCommand_InvalidTarget(t *testing.T) {
	_, err := commands.NewUpdateOrderViaCodeCommand(order.Service, kernel.NewAccessCode().String(), order.Unknown, "")

	require.Error(t, err)
}
