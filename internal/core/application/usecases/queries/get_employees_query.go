package queries

import (
	"errors"

	"cargotrack/internal/core/domain/model/employee"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/pkg/guard"
)

var ErrGetEmployeesQueryIsNotConstructed = errors.New(
	"GetEmployeesQuery must be created via NewGetEmployeesQuery constructor",
)

// GetEmployeesQuery retrieves all employee accounts. The HTTP layer restricts
// this to admins.
type GetEmployeesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetEmployeesQuery creates a parameterless employee-listing query.
func NewGetEmployeesQuery() GetEmployeesQuery {
	return GetEmployeesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetEmployeesQuery) Validate() error {
	return q.guard.Validate(ErrGetEmployeesQueryIsNotConstructed)
}

// EmployeeRow is one row of the employee listing. Password hashes never
// leave the persistence layer through this read model.
type EmployeeRow struct {
	ID         kernel.UUID
	Name       string
	Login      string
	Role       employee.Role
	BranchID   *kernel.UUID
	BranchName string
}
