package ports

import (
	"context"

	"cargotrack/internal/core/domain/model/employee"
	"cargotrack/internal/core/domain/model/kernel"
)

// EmployeeRepository defines the persistence contract for employee accounts.
type EmployeeRepository interface {
	// Add persists a new employee. A login uniqueness violation is reported
	// as employee.ErrDuplicateLogin.
	Add(ctx context.Context, aggregate *employee.Employee) error

	// Get retrieves an employee by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error)

	// GetByLogin retrieves an employee by their unique login.
	GetByLogin(ctx context.Context, login string) (*employee.Employee, error)
}
