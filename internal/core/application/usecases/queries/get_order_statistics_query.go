package queries

import (
	"errors"

	"cargotrack/internal/core/domain/model/employee"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"
	"cargotrack/internal/pkg/guard"
)

var ErrGetOrderStatisticsQueryIsNotConstructed = errors.New(
	"GetOrderStatisticsQuery must be created via NewGetOrderStatisticsQuery constructor",
)

// GetOrderStatisticsQuery retrieves order counts grouped by status and by
// branch for the back-office dashboard. Branch workers only see their own
// branch's numbers.
type GetOrderStatisticsQuery struct {
	actor employee.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderStatisticsQuery creates a validated statistics query.
func NewGetOrderStatisticsQuery(actor employee.Actor) (GetOrderStatisticsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrderStatisticsQuery{}, err
	}
	return GetOrderStatisticsQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatisticsQueryIsNotConstructed)
}

// Actor returns the requesting employee context.
func (q GetOrderStatisticsQuery) Actor() employee.Actor { return q.actor }

// StatusCount is the number of orders currently in one status.
type StatusCount struct {
	Status            order.Status
	StatusDisplayName string
	Count             int64
}

// BranchCount is the number of orders currently assigned to one branch.
type BranchCount struct {
	BranchID   kernel.UUID
	BranchName string
	Count      int64
}

// OrderStatisticsResponse is the dashboard read model.
type OrderStatisticsResponse struct {
	Total    int64
	ByStatus []StatusCount
	ByBranch []BranchCount
}
