package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cargotrack/internal/core/domain/model/employee"
	"cargotrack/internal/core/domain/model/kernel"
)

// GetEmployeesQueryHandler retrieves employee accounts from the database.
type GetEmployeesQueryHandler struct {
	db *gorm.DB
}

// NewGetEmployeesQueryHandler creates a handler for employee listing queries.
func NewGetEmployeesQueryHandler(db *gorm.DB) GetEmployeesQueryHandler {
	return GetEmployeesQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by name.
func (h GetEmployeesQueryHandler) Handle(ctx context.Context, query GetEmployeesQuery) ([]EmployeeRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			e.id,
			e.name,
			e.login,
			e.role,
			e.branch_id,
			b.name
		FROM employees e
		LEFT JOIN branches b ON b.id = e.branch_id
		ORDER BY e.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]EmployeeRow, 0)

	for rows.Next() {
		var empRow EmployeeRow
		var id uuid.UUID
		var role string
		var branchID uuid.NullUUID
		var branchName sql.NullString

		err = rows.Scan(&id, &empRow.Name, &empRow.Login, &role, &branchID, &branchName)
		if err != nil {
			return nil, err
		}

		employeeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		empRow.ID = employeeID
		empRow.Role = employee.Role(role)
		empRow.BranchName = branchName.String

		if branchID.Valid {
			bID, bErr := kernel.UUIDFromBytes(branchID.UUID[:])
			if bErr != nil {
				return nil, bErr
			}
			empRow.BranchID = &bID
		}

		employees = append(employees, empRow)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
