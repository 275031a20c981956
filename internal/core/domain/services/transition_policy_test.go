package services_test

import (
	"testing"

	"cargotrack/internal/core/domain/model/employee"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"
	"cargotrack/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActor(t *testing.T, role employee.Role, branchID *kernel.UUID) employee.Actor {
	t.Helper()
	actor, err := employee.NewActor(kernel.NewUUID(), role, branchID)
	require.NoError(t, err)
	return actor
}

func TestTransitionPolicy_AdminBypassesEverything(t *testing.T) {
	policy := services.NewTransitionPolicy()
	admin := newActor(t, employee.Admin, nil)

	// Every (current, target) pair is permitted for admin, including leaving
	// terminal statuses and skipping pipeline steps.
	for _, current := range order.AllStatuses() {
		for _, target := range order.AllStatuses() {
			err := policy.Authorize(admin, current, target, nil)
			require.NoError(t, err, "%s -> %s", current, target)
		}
	}
}

func TestTransitionPolicy_ProblemIsAlwaysPermitted(t *testing.T) {
	policy := services.NewTransitionPolicy()
	branchID := kernel.NewUUID()

	actors := map[string]employee.Actor{
		"admin":         newActor(t, employee.Admin, nil),
		"china_worker":  newActor(t, employee.ChinaWorker, nil),
		"branch_worker": newActor(t, employee.BranchWorker, &branchID),
	}

	for name, actor := range actors {
		for _, current := range order.AllStatuses() {
			err := policy.Authorize(actor, current, order.Problem, nil)
			require.NoError(t, err, "%s from %s", name, current)
		}
	}
}

func TestTransitionPolicy_IllegalTransitionsRejected(t *testing.T) {
	policy := services.NewTransitionPolicy()
	branchID := kernel.NewUUID()

	nonAdmins := []employee.Actor{
		newActor(t, employee.ChinaWorker, nil),
		newActor(t, employee.BranchWorker, &branchID),
	}

	for _, actor := range nonAdmins {
		for _, current := range order.AllStatuses() {
			for _, target := range order.AllStatuses() {
				if target == order.Problem || current.CanTransitionTo(target) {
					continue
				}
				err := policy.Authorize(actor, current, target, &branchID)
				require.ErrorIs(t, err, services.ErrIllegalTransition,
					"%s: %s -> %s", actor.Role(), current, target)
			}
		}
	}
}

func TestTransitionPolicy_ChinaWorker(t *testing.T) {
	policy := services.NewTransitionPolicy()
	worker := newActor(t, employee.ChinaWorker, nil)

	t.Run("owns_the_china_leg_end_to_end", func(t *testing.T) {
		require.NoError(t, policy.Authorize(worker, order.Created, order.ArrivedCN, nil))
		require.NoError(t, policy.Authorize(worker, order.ArrivedCN, order.Packed, nil))
		require.NoError(t, policy.Authorize(worker, order.Packed, order.SentToKZ, nil))
	})

	t.Run("rejected_past_the_china_leg", func(t *testing.T) {
		err := policy.Authorize(worker, order.SentToKZ, order.InTransit, nil)
		require.ErrorIs(t, err, services.ErrRoleNotPermitted)

		err = policy.Authorize(worker, order.ReadyForPickup, order.Issued, nil)
		require.ErrorIs(t, err, services.ErrRoleNotPermitted)
	})

	t.Run("arrived_branch_from_created_is_illegal_transition_first", func(t *testing.T) {
		// Structural check precedes the role restriction: created -> arrived_branch
		// is not in the table at all.
		err := policy.Authorize(worker, order.Created, order.ArrivedBranch, nil)
		require.ErrorIs(t, err, services.ErrIllegalTransition)
	})

	t.Run("arrived_branch_is_role_rejected_even_when_structurally_legal", func(t *testing.T) {
		err := policy.Authorize(worker, order.InTransit, order.ArrivedBranch, nil)
		require.ErrorIs(t, err, services.ErrRoleNotPermitted)
	})
}

func TestTransitionPolicy_BranchWorker(t *testing.T) {
	policy := services.NewTransitionPolicy()
	b1 := kernel.NewUUID()
	b2 := kernel.NewUUID()
	worker := newActor(t, employee.BranchWorker, &b1)

	t.Run("arrival_is_unconditional", func(t *testing.T) {
		// The actor's branch becomes the order's branch as a side effect of
		// the transition, so no scoping applies yet.
		require.NoError(t, policy.Authorize(worker, order.InTransit, order.ArrivedBranch, nil))
		require.NoError(t, policy.Authorize(worker, order.InTransit, order.ArrivedBranch, &b2))
	})

	t.Run("pickup_and_issue_require_own_branch", func(t *testing.T) {
		require.NoError(t, policy.Authorize(worker, order.ArrivedBranch, order.ReadyForPickup, &b1))
		require.NoError(t, policy.Authorize(worker, order.ReadyForPickup, order.Issued, &b1))

		err := policy.Authorize(worker, order.ArrivedBranch, order.ReadyForPickup, &b2)
		require.ErrorIs(t, err, services.ErrBranchMismatch)

		err = policy.Authorize(worker, order.ReadyForPickup, order.Issued, &b2)
		require.ErrorIs(t, err, services.ErrBranchMismatch)
	})

	t.Run("unrouted_order_is_a_branch_mismatch", func(t *testing.T) {
		err := policy.Authorize(worker, order.ArrivedBranch, order.ReadyForPickup, nil)
		require.ErrorIs(t, err, services.ErrBranchMismatch)
	})

	t.Run("china_leg_is_role_rejected", func(t *testing.T) {
		err := policy.Authorize(worker, order.Created, order.ArrivedCN, &b1)
		require.ErrorIs(t, err, services.ErrRoleNotPermitted)
	})
}

func TestTransitionPolicy_UnknownStatusFailsFast(t *testing.T) {
	policy := services.NewTransitionPolicy()
	admin := newActor(t, employee.Admin, nil)

	require.ErrorIs(t, policy.Authorize(admin, "bogus", order.Issued, nil), order.ErrUnknownStatus)
	require.ErrorIs(t, policy.Authorize(admin, order.Created, "bogus", nil), order.ErrUnknownStatus)
}

func TestTransitionPolicy_UnconstructedActorRejected(t *testing.T) {
	policy := services.NewTransitionPolicy()
	var actor employee.Actor

	err := policy.Authorize(actor, order.Created, order.ArrivedCN, nil)
	require.ErrorIs(t, err, employee.ErrActorIsNotConstructed)
}

func TestTransitionPolicy_AvailableActions(t *testing.T) {
	policy := services.NewTransitionPolicy()
	b1 := kernel.NewUUID()
	b2 := kernel.NewUUID()

	t.Run("admin_sees_the_full_allowed_set", func(t *testing.T) {
		admin := newActor(t, employee.Admin, nil)

		assert.Equal(t, []order.Status{order.ArrivedCN},
			policy.AvailableActions(admin, order.Created, nil))
		assert.Empty(t, policy.AvailableActions(admin, order.Issued, nil))
	})

	t.Run("china_worker_sees_nothing_past_the_china_leg", func(t *testing.T) {
		worker := newActor(t, employee.ChinaWorker, nil)

		assert.Equal(t, []order.Status{order.Packed},
			policy.AvailableActions(worker, order.ArrivedCN, nil))
		assert.Empty(t, policy.AvailableActions(worker, order.SentToKZ, nil))
	})

	t.Run("branch_worker_scoped_by_branch", func(t *testing.T) {
		worker := newActor(t, employee.BranchWorker, &b1)

		assert.Equal(t, []order.Status{order.ReadyForPickup},
			policy.AvailableActions(worker, order.ArrivedBranch, &b1))
		assert.Empty(t, policy.AvailableActions(worker, order.ArrivedBranch, &b2))
		assert.Equal(t, []order.Status{order.ArrivedBranch},
			policy.AvailableActions(worker, order.InTransit, nil))
	})

	t.Run("terminal_statuses_offer_no_actions", func(t *testing.T) {
		for _, role := range employee.AllRoles() {
			var branchID *kernel.UUID
			if role == employee.BranchWorker {
				branchID = &b1
			}
			actor := newActor(t, role, branchID)
			for _, s := range []order.Status{order.Issued, order.Problem, order.Cancelled} {
				assert.Empty(t, policy.AvailableActions(actor, s, &b1), "%s/%s", role, s)
			}
		}
	})
}
