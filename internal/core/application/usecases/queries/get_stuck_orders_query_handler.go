package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"
)

// GetStuckOrdersQueryHandler finds non-terminal orders that have not moved
// within the threshold.
type GetStuckOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStuckOrdersQueryHandler creates a handler for stuck-order queries.
func NewGetStuckOrdersQueryHandler(db *gorm.DB) GetStuckOrdersQueryHandler {
	return GetStuckOrdersQueryHandler{db: db}
}

// Handle executes the query. Terminal statuses never count as stuck; results
// are sorted oldest-first so the longest-stuck orders come up first.
func (h GetStuckOrdersQueryHandler) Handle(ctx context.Context, query GetStuckOrdersQuery) ([]StuckOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	cutoff := now.Add(-query.Threshold())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.track_number,
			o.status,
			o.branch_id,
			b.name,
			o.client_id,
			o.version,
			o.created_at,
			o.updated_at
		FROM orders o
		LEFT JOIN branches b ON b.id = o.branch_id
		WHERE o.status NOT IN (?, ?, ?)
		  AND o.updated_at < ?
		ORDER BY o.updated_at
	`, order.Issued.String(), order.Problem.String(), order.Cancelled.String(), cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stuck := make([]StuckOrder, 0)

	for rows.Next() {
		var entry StuckOrder
		var id uuid.UUID
		var status string
		var branchID uuid.NullUUID
		var branchName sql.NullString
		var clientID sql.NullInt64
		var createdAt, updatedAt time.Time

		err = rows.Scan(
			&id,
			&entry.TrackNumber,
			&status,
			&branchID,
			&branchName,
			&clientID,
			&entry.Version,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = orderID
		entry.Status = order.Status(status)
		entry.StatusDisplayName = entry.Status.DisplayName()
		entry.BranchName = branchName.String
		entry.CreatedAt = createdAt
		entry.UpdatedAt = updatedAt
		entry.StuckFor = now.Sub(updatedAt)

		if branchID.Valid {
			bID, bErr := kernel.UUIDFromBytes(branchID.UUID[:])
			if bErr != nil {
				return nil, bErr
			}
			entry.BranchID = &bID
		}
		if clientID.Valid {
			entry.ClientID = &clientID.Int64
		}

		stuck = append(stuck, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stuck, nil
}
