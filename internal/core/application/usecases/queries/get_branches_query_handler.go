package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cargotrack/internal/core/domain/model/kernel"
)

// GetBranchesQueryHandler retrieves the branch directory from the database.
type GetBranchesQueryHandler struct {
	db *gorm.DB
}

// NewGetBranchesQueryHandler creates a handler for branch listing queries.
func NewGetBranchesQueryHandler(db *gorm.DB) GetBranchesQueryHandler {
	return GetBranchesQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by city, then name.
func (h GetBranchesQueryHandler) Handle(ctx context.Context, query GetBranchesQuery) ([]BranchRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, city, address, phone, code
		FROM branches
		ORDER BY city, name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	branches := make([]BranchRow, 0)

	for rows.Next() {
		var branch BranchRow
		var id uuid.UUID
		var address, phone sql.NullString

		err = rows.Scan(&id, &branch.Name, &branch.City, &address, &phone, &branch.Code)
		if err != nil {
			return nil, err
		}

		branchID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		branch.ID = branchID
		branch.Address = address.String
		branch.Phone = phone.String

		branches = append(branches, branch)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return branches, nil
}
