package employee_test

import (
	"testing"

	"cargotrack/internal/core/domain/model/employee"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Validate(t *testing.T) {
	for _, r := range employee.AllRoles() {
		require.NoError(t, r.Validate(), "role %s", r)
	}

	for _, r := range []employee.Role{"", "manager", "ADMIN"} {
		require.ErrorIs(t, r.Validate(), employee.ErrUnknownRole, "role %q", r)
	}
}

func TestNewEmployee(t *testing.T) {
	branch := kernel.NewUUID()

	t.Run("valid_branch_worker", func(t *testing.T) {
		emp, err := employee.NewEmployee(
			kernel.NewUUID(), "Aigerim", "aigerim", "$2a$10$hash", employee.BranchWorker, &branch)

		require.NoError(t, err)
		assert.Equal(t, employee.BranchWorker, emp.Role())
		assert.True(t, branch.IsEqual(*emp.BranchID()))
	})

	t.Run("branch_worker_requires_branch", func(t *testing.T) {
		_, err := employee.NewEmployee(
			kernel.NewUUID(), "Aigerim", "aigerim", "$2a$10$hash", employee.BranchWorker, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("admin_without_branch", func(t *testing.T) {
		emp, err := employee.NewEmployee(
			kernel.NewUUID(), "Admin", "admin", "$2a$10$hash", employee.Admin, nil)

		require.NoError(t, err)
		assert.Nil(t, emp.BranchID())
	})

	t.Run("rejects_unknown_role", func(t *testing.T) {
		_, err := employee.NewEmployee(
			kernel.NewUUID(), "X", "x-login", "$2a$10$hash", "manager", nil)
		require.ErrorIs(t, err, employee.ErrUnknownRole)
	})

	t.Run("rejects_empty_login", func(t *testing.T) {
		_, err := employee.NewEmployee(
			kernel.NewUUID(), "X", "", "$2a$10$hash", employee.Admin, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestEmployee_AsActor(t *testing.T) {
	branch := kernel.NewUUID()
	emp, err := employee.NewEmployee(
		kernel.NewUUID(), "Aigerim", "aigerim", "$2a$10$hash", employee.BranchWorker, &branch)
	require.NoError(t, err)

	actor, err := emp.AsActor()

	require.NoError(t, err)
	assert.True(t, emp.ID().IsEqual(actor.ID()))
	assert.Equal(t, employee.BranchWorker, actor.Role())
	assert.True(t, branch.IsEqual(*actor.BranchID()))
}

func TestActor_Validate(t *testing.T) {
	t.Run("zero_value_rejected", func(t *testing.T) {
		var a employee.Actor
		require.ErrorIs(t, a.Validate(), employee.ErrActorIsNotConstructed)
	})

	t.Run("constructed_actor_is_valid", func(t *testing.T) {
		a, err := employee.NewActor(kernel.NewUUID(), employee.Admin, nil)
		require.NoError(t, err)
		require.NoError(t, a.Validate())
	})
}
