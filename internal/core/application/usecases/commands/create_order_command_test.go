package commands_test

import (
	"testing"

	"cargotrack/internal/core/application/usecases/commands"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	clientID := int64(42)
	actor := adminActor(t)

	cmd, err := commands.NewCreateOrderCommand(orderID, "  lp00123456cn ", nil, &clientID, actor)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, "LP00123456CN", cmd.TrackNumber().String())
	assert.Nil(t, cmd.BranchID())
	require.NotNil(t, cmd.ClientID())
	assert.Equal(t, clientID, *cmd.ClientID())
	require.NoError(t, cmd.Validate())
}

func TestNewCreateOrderCommand_EmptyTrackNumber(t *testing.T) {
	actor := adminActor(t)
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "   ", nil, nil, actor)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_TrackNumberTooShort(t *testing.T) {
	actor := adminActor(t)
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "abc", nil, nil, actor)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	actor := adminActor(t)
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, "LP00123456CN", nil, nil, actor)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
