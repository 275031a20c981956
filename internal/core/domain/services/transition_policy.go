package services

import (
	"errors"

	"cargotrack/internal/core/domain/model/employee"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"
)

var (
	// ErrIllegalTransition is returned when the target status is not
	// reachable from the current status per the transition table.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrRoleNotPermitted is returned when the actor's role forbids a
	// transition that is otherwise structurally legal.
	ErrRoleNotPermitted = errors.New("role is not permitted to perform this transition")

	// ErrBranchMismatch is returned when a branch worker acts on an order
	// outside their own branch scope.
	ErrBranchMismatch = errors.New("order belongs to a different branch")
)

// chinaWorkerTargets is the China-leg ownership set: a china_worker can drive
// created -> arrived_cn -> packed -> sent_to_kz unaided, and nothing past it.
var chinaWorkerTargets = map[order.Status]bool{
	order.ArrivedCN: true,
	order.Packed:    true,
	order.SentToKZ:  true,
}

// TransitionPolicy is a pure domain service deciding whether an actor may
// move an order between statuses. It has no state and no side effects, so a
// pre-computed decision must never be trusted across time: handlers
// re-evaluate the policy at commit time.
type TransitionPolicy struct{}

// NewTransitionPolicy creates a new TransitionPolicy instance.
func NewTransitionPolicy() TransitionPolicy {
	return TransitionPolicy{}
}

// Authorize decides whether actor may transition an order from current to
// target. orderBranchID is the order's destination branch, nil while unrouted.
//
// Rules are evaluated in this exact order; the precedence is load-bearing:
//  1. admin is permitted unconditionally, bypassing the transition table and
//     branch scoping (deliberate override capability)
//  2. any employee may flag problem on any order
//  3. the transition must be structurally legal per the transition table
//  4. role restriction: china_worker is confined to the China leg;
//     branch_worker may record arrivals anywhere (the arrival routes the
//     order to their branch) but may prepare and issue only at their own branch
func (TransitionPolicy) Authorize(
	actor employee.Actor,
	current order.Status,
	target order.Status,
	orderBranchID *kernel.UUID,
) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := current.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if actor.Role() == employee.Admin {
		return nil
	}

	if target == order.Problem {
		return nil
	}

	if !current.CanTransitionTo(target) {
		return ErrIllegalTransition
	}

	switch actor.Role() {
	case employee.ChinaWorker:
		if !chinaWorkerTargets[target] {
			return ErrRoleNotPermitted
		}
		return nil

	case employee.BranchWorker:
		switch target {
		case order.ArrivedBranch:
			return nil
		case order.ReadyForPickup, order.Issued:
			if actor.BranchID() == nil || orderBranchID == nil ||
				!actor.BranchID().IsEqual(*orderBranchID) {
				return ErrBranchMismatch
			}
			return nil
		default:
			return ErrRoleNotPermitted
		}

	default:
		return ErrRoleNotPermitted
	}
}

// AvailableActions returns the subset of the transition table's allowed-set
// for current that the actor passes Authorize for. It drives which action
// buttons the UI offers; the authoritative gate remains the Authorize call at
// commit time.
//
// problem is not included: it is outside the normal transition table and the
// UI offers it separately on every non-terminal order.
func (p TransitionPolicy) AvailableActions(
	actor employee.Actor,
	current order.Status,
	orderBranchID *kernel.UUID,
) []order.Status {
	actions := make([]order.Status, 0)
	for _, target := range current.NextStatuses() {
		if p.Authorize(actor, current, target, orderBranchID) == nil {
			actions = append(actions, target)
		}
	}
	return actions
}
