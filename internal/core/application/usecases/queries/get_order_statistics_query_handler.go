package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cargotrack/internal/core/domain/model/employee"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"
)

// GetOrderStatisticsQueryHandler aggregates order counts for the dashboard.
type GetOrderStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatisticsQueryHandler creates a handler for statistics queries.
func NewGetOrderStatisticsQueryHandler(db *gorm.DB) GetOrderStatisticsQueryHandler {
	return GetOrderStatisticsQueryHandler{db: db}
}

// Handle executes the aggregation queries. Statuses with zero orders are
// included so the dashboard renders the full pipeline.
func (h GetOrderStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatisticsQuery,
) (OrderStatisticsResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderStatisticsResponse{}, err
	}

	scope := ""
	args := make([]any, 0, 1)
	if query.Actor().Role() == employee.BranchWorker && query.Actor().BranchID() != nil {
		scope = " WHERE branch_id = ?"
		args = append(args, query.Actor().BranchID().Bytes())
	}

	byStatus, total, err := h.countByStatus(ctx, scope, args)
	if err != nil {
		return OrderStatisticsResponse{}, err
	}

	byBranch, err := h.countByBranch(ctx, scope, args)
	if err != nil {
		return OrderStatisticsResponse{}, err
	}

	return OrderStatisticsResponse{
		Total:    total,
		ByStatus: byStatus,
		ByBranch: byBranch,
	}, nil
}

func (h GetOrderStatisticsQueryHandler) countByStatus(
	ctx context.Context,
	scope string,
	args []any,
) ([]StatusCount, int64, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders`+scope+`
		GROUP BY status
	`, args...).Rows()
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	counts := make(map[order.Status]int64, len(order.AllStatuses()))
	var total int64

	for rows.Next() {
		var status string
		var count int64
		if err = rows.Scan(&status, &count); err != nil {
			return nil, 0, err
		}
		counts[order.Status(status)] = count
		total += count
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	byStatus := make([]StatusCount, 0, len(order.AllStatuses()))
	for _, status := range order.AllStatuses() {
		byStatus = append(byStatus, StatusCount{
			Status:            status,
			StatusDisplayName: status.DisplayName(),
			Count:             counts[status],
		})
	}

	return byStatus, total, nil
}

func (h GetOrderStatisticsQueryHandler) countByBranch(
	ctx context.Context,
	scope string,
	args []any,
) ([]BranchCount, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT b.id, b.name, COUNT(o.id)
		FROM branches b
		JOIN orders o ON o.branch_id = b.id`+scopeForJoin(scope)+`
		GROUP BY b.id, b.name
		ORDER BY b.name
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byBranch := make([]BranchCount, 0)

	for rows.Next() {
		var branchCount BranchCount
		var id uuid.UUID

		if err = rows.Scan(&id, &branchCount.BranchName, &branchCount.Count); err != nil {
			return nil, err
		}

		branchID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		branchCount.BranchID = branchID

		byBranch = append(byBranch, branchCount)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return byBranch, nil
}

// scopeForJoin rewrites the bare-table scope clause for the aliased join.
func scopeForJoin(scope string) string {
	if scope == "" {
		return ""
	}
	return " WHERE o.branch_id = ?"
}
