package queries

import (
	"errors"

	"cargotrack/internal/core/domain/model/employee"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"
	"cargotrack/internal/pkg/guard"
)

var ErrGetAvailableActionsQueryIsNotConstructed = errors.New(
	"GetAvailableActionsQuery must be created via NewGetAvailableActionsQuery constructor",
)

// GetAvailableActionsQuery computes which status transitions the acting
// employee may invoke on an order right now. The result is advisory: the
// transition executor re-evaluates the policy at commit time.
type GetAvailableActionsQuery struct {
	actor   employee.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAvailableActionsQuery creates a validated available-actions query.
func NewGetAvailableActionsQuery(actor employee.Actor, orderID kernel.UUID) (GetAvailableActionsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetAvailableActionsQuery{}, err
	}
	if err := orderID.Validate(); err != nil {
		return GetAvailableActionsQuery{}, err
	}

	return GetAvailableActionsQuery{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableActionsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableActionsQueryIsNotConstructed)
}

// Actor returns the requesting employee context.
func (q GetAvailableActionsQuery) Actor() employee.Actor { return q.actor }

// OrderID returns the order the actions apply to.
func (q GetAvailableActionsQuery) OrderID() kernel.UUID { return q.orderID }

// AvailableAction is one transition the actor may invoke.
type AvailableAction struct {
	Status            order.Status
	StatusDisplayName string
}

// AvailableActionsResponse pairs the order's current status with the
// transitions the actor may invoke from it.
type AvailableActionsResponse struct {
	CurrentStatus     order.Status
	StatusDisplayName string
	Actions           []AvailableAction
	CanFlagProblem    bool
}
