package employee

import (
	"errors"

	"cargotrack/internal/core/domain/model/kernel"
)

// ErrActorIsNotConstructed is returned when an Actor was not created through
// NewActor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the authenticated employee context for a single request.
// It is always passed explicitly into policy checks and command handlers,
// never read from ambient state, so the core stays testable in isolation.
type Actor struct {
	id       kernel.UUID
	role     Role
	branchID *kernel.UUID

	isConstructed bool
}

// NewActor creates an actor context. branchID is required for branch workers
// and optional otherwise.
func NewActor(id kernel.UUID, role Role, branchID *kernel.UUID) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	if branchID != nil {
		if err := branchID.Validate(); err != nil {
			return Actor{}, err
		}
	}

	return Actor{
		id:            id,
		role:          role,
		branchID:      branchID,
		isConstructed: true,
	}, nil
}

// Validate ensures the actor was created through NewActor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// ID returns the acting employee's identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the acting employee's role.
func (a Actor) Role() Role {
	return a.role
}

// BranchID returns the actor's own branch, nil for roles without one.
func (a Actor) BranchID() *kernel.UUID {
	return a.branchID
}
