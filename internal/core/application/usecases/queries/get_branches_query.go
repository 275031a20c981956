package queries

import (
	"errors"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/pkg/guard"
)

var ErrGetBranchesQueryIsNotConstructed = errors.New(
	"GetBranchesQuery must be created via NewGetBranchesQuery constructor",
)

// GetBranchesQuery retrieves all pickup branches.
type GetBranchesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetBranchesQuery creates a parameterless branch-listing query.
func NewGetBranchesQuery() GetBranchesQuery {
	return GetBranchesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetBranchesQuery) Validate() error {
	return q.guard.Validate(ErrGetBranchesQueryIsNotConstructed)
}

// BranchRow is one row of the branch listing.
type BranchRow struct {
	ID      kernel.UUID
	Name    string
	City    string
	Address string
	Phone   string
	Code    string
}
