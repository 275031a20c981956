// Package employee contains the Employee aggregate, the role taxonomy, and
// the Actor context threaded through authorization-sensitive operations.
package employee

import (
	"errors"
	"fmt"
)

// ErrUnknownRole is returned for role values outside the closed three-value set.
var ErrUnknownRole = errors.New("unknown employee role")

// Role determines which order-status transitions an employee may invoke.
type Role string

const (
	// Admin bypasses the transition table and all branch scoping. This is a
	// deliberate override capability for back-office operators.
	Admin Role = "admin"

	// ChinaWorker owns the China leg: arrival, packing, and dispatch to KZ.
	ChinaWorker Role = "china_worker"

	// BranchWorker receives parcels at a branch and issues them to clients,
	// scoped to their own branch.
	BranchWorker Role = "branch_worker"
)

// AllRoles returns the closed role set.
func AllRoles() []Role {
	return []Role{Admin, ChinaWorker, BranchWorker}
}

// Validate checks membership in the closed role set.
func (r Role) Validate() error {
	switch r {
	case Admin, ChinaWorker, BranchWorker:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRole, string(r))
	}
}

// String implements fmt.Stringer using the persisted representation.
func (r Role) String() string {
	return string(r)
}
