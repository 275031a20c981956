package commands_test

import (
	"testing"

	"cargotrack/internal/core/application/usecases/commands"
	"cargotrack/internal/core/domain/model/employee"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterEmployeeCommand_ValidInput(t *testing.T) {
	employeeID := kernel.NewUUID()
	actor := adminActor(t)

	cmd, err := commands.NewRegisterEmployeeCommand(
		employeeID, "Aigerim", "aigerim", "s3cret-pass", employee.ChinaWorker, nil, actor)
	require.NoError(t, err)
	assert.Equal(t, employeeID, cmd.EmployeeID())
	assert.Equal(t, "aigerim", cmd.Login())
	assert.Equal(t, employee.ChinaWorker, cmd.Role())
	assert.Nil(t, cmd.BranchID())
	require.NoError(t, cmd.Validate())
}

func TestNewRegisterEmployeeCommand_PasswordTooShort(t *testing.T) {
	actor := adminActor(t)
	_, err := commands.NewRegisterEmployeeCommand(
		kernel.NewUUID(), "Aigerim", "aigerim", "short", employee.ChinaWorker, nil, actor)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewRegisterEmployeeCommand_UnknownRole(t *testing.T) {
	actor := adminActor(t)
	_, err := commands.NewRegisterEmployeeCommand(
		kernel.NewUUID(), "Aigerim", "aigerim", "s3cret-pass", employee.Role("manager"), nil, actor)
	require.Error(t, err)
	assert.ErrorIs(t, err, employee.ErrUnknownRole)
}

func TestNewRegisterEmployeeCommand_BranchWorkerWithoutBranch(t *testing.T) {
	actor := adminActor(t)
	_, err := commands.NewRegisterEmployeeCommand(
		kernel.NewUUID(), "Dana", "dana", "s3cret-pass", employee.BranchWorker, nil, actor)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewRegisterEmployeeCommand_BranchWorkerWithBranch(t *testing.T) {
	branchID := kernel.NewUUID()
	actor := adminActor(t)

	cmd, err := commands.NewRegisterEmployeeCommand(
		kernel.NewUUID(), "Dana", "dana", "s3cret-pass", employee.BranchWorker, &branchID, actor)
	require.NoError(t, err)
	require.NotNil(t, cmd.BranchID())
	assert.True(t, cmd.BranchID().IsEqual(branchID))
}
