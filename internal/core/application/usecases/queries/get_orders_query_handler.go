package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cargotrack/internal/core/domain/model/employee"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"
)

// GetOrdersQueryHandler retrieves order listing pages from the database.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing query. Results are sorted newest-first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := "1=1"
	args := make([]any, 0, 4)

	if query.Actor().Role() == employee.BranchWorker && query.Actor().BranchID() != nil {
		where += " AND o.branch_id = ?"
		args = append(args, query.Actor().BranchID().Bytes())
	}
	if query.StatusFilter() != nil {
		where += " AND o.status = ?"
		args = append(args, query.StatusFilter().String())
	}
	if query.Search() != "" {
		where += " AND o.track_number ILIKE ?"
		args = append(args, "%"+query.Search()+"%")
	}

	args = append(args, query.Limit(), query.Offset())

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
		WHERE `+where+`
		ORDER BY o.created_at DESC
		LIMIT ? OFFSET ?
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]OrderSummary, 0)

	for rows.Next() {
		var summary OrderSummary
		var id uuid.UUID
		var status string
		var branchID uuid.NullUUID
		var branchName sql.NullString
		var clientID sql.NullInt64
		var createdAt, updatedAt time.Time

		err = rows.Scan(
			&id,
			&summary.TrackNumber,
			&status,
			&branchID,
			&branchName,
			&clientID,
			&summary.Version,
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
		summary.ID = orderID
		summary.Status = order.Status(status)
		summary.StatusDisplayName = summary.Status.DisplayName()
		summary.BranchName = branchName.String
		summary.CreatedAt = createdAt
		summary.UpdatedAt = updatedAt

		if branchID.Valid {
			bID, bErr := kernel.UUIDFromBytes(branchID.UUID[:])
			if bErr != nil {
				return nil, bErr
			}
			summary.BranchID = &bID
		}
		if clientID.Valid {
			summary.ClientID = &clientID.Int64
		}

		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
