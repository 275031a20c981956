package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cargotrack/internal/core/domain/model/employee"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"
	"cargotrack/internal/pkg/errs"
)

// GetOrderByTrackNumberQueryHandler retrieves one order and its history.
// Branch workers only see orders of their own branch; anything else reads as
// not found so track numbers cannot be probed across branches.
type GetOrderByTrackNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByTrackNumberQueryHandler creates a handler for order-detail queries.
func NewGetOrderByTrackNumberQueryHandler(db *gorm.DB) GetOrderByTrackNumberQueryHandler {
	return GetOrderByTrackNumberQueryHandler{db: db}
}

// Handle executes the detail query. A missing order returns
// errs.ErrObjectNotFound.
func (h GetOrderByTrackNumberQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByTrackNumberQuery,
) (OrderDetail, error) {
	if err := query.Validate(); err != nil {
		return OrderDetail{}, err
	}

	detail, err := h.fetchOrder(ctx, query)
	if err != nil {
		return OrderDetail{}, err
	}

	detail.History, err = h.fetchHistory(ctx, detail.ID)
	if err != nil {
		return OrderDetail{}, err
	}

	return detail, nil
}

func (h GetOrderByTrackNumberQueryHandler) fetchOrder(
	ctx context.Context,
	query GetOrderByTrackNumberQuery,
) (OrderDetail, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.track_number,
			o.status,
			o.branch_id,
			b.name,
			o.client_id,
			o.created_by,
			o.version,
			o.created_at,
			o.updated_at
		FROM orders o
		LEFT JOIN branches b ON b.id = o.branch_id
		WHERE o.track_number = ?
	`, query.TrackNumber().String()).Row()

	var detail OrderDetail
	var id uuid.UUID
	var status string
	var branchID, createdBy uuid.NullUUID
	var branchName sql.NullString
	var clientID sql.NullInt64
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&id,
		&detail.TrackNumber,
		&status,
		&branchID,
		&branchName,
		&clientID,
		&createdBy,
		&detail.Version,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderDetail{}, errs.NewObjectNotFoundError("trackNumber", query.TrackNumber().String())
	}
	if err != nil {
		return OrderDetail{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderDetail{}, err
	}
	detail.ID = orderID
	detail.Status = order.Status(status)
	detail.StatusDisplayName = detail.Status.DisplayName()
	detail.BranchName = branchName.String
	detail.CreatedAt = createdAt
	detail.UpdatedAt = updatedAt

	if branchID.Valid {
		bID, bErr := kernel.UUIDFromBytes(branchID.UUID[:])
		if bErr != nil {
			return OrderDetail{}, bErr
		}
		detail.BranchID = &bID
	}
	if createdBy.Valid {
		cID, cErr := kernel.UUIDFromBytes(createdBy.UUID[:])
		if cErr != nil {
			return OrderDetail{}, cErr
		}
		detail.CreatedBy = &cID
	}
	if clientID.Valid {
		detail.ClientID = &clientID.Int64
	}

	if !h.visibleTo(query.Actor(), detail.BranchID) {
		return OrderDetail{}, errs.NewObjectNotFoundError("trackNumber", query.TrackNumber().String())
	}

	return detail, nil
}

func (h GetOrderByTrackNumberQueryHandler) visibleTo(actor employee.Actor, orderBranchID *kernel.UUID) bool {
	if actor.Role() != employee.BranchWorker {
		return true
	}
	if actor.BranchID() == nil || orderBranchID == nil {
		return false
	}
	return actor.BranchID().IsEqual(*orderBranchID)
}

func (h GetOrderByTrackNumberQueryHandler) fetchHistory(
	ctx context.Context,
	orderID kernel.UUID,
) ([]HistoryRow, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			oh.status,
			oh.changed_by,
			e.name,
			oh.note,
			oh.changed_at
		FROM order_history oh
		LEFT JOIN employees e ON e.id = oh.changed_by
		WHERE oh.order_id = ?
		ORDER BY oh.changed_at DESC, oh.id DESC
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]HistoryRow, 0)

	for rows.Next() {
		var entry HistoryRow
		var status string
		var changedBy uuid.UUID
		var changedByName sql.NullString
		var note sql.NullString

		err = rows.Scan(&status, &changedBy, &changedByName, &note, &entry.ChangedAt)
		if err != nil {
			return nil, err
		}

		changedByID, idErr := kernel.UUIDFromBytes(changedBy[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.Status = order.Status(status)
		entry.StatusDisplayName = entry.Status.DisplayName()
		entry.ChangedBy = changedByID
		entry.ChangedByName = changedByName.String
		entry.Note = note.String

		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
