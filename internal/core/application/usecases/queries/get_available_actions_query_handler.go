package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"
	"cargotrack/internal/core/domain/services"
	"cargotrack/internal/pkg/errs"
)

// GetAvailableActionsQueryHandler reads an order's current state and filters
// its outgoing transitions through the transition policy.
type GetAvailableActionsQueryHandler struct {
	db     *gorm.DB
	policy services.TransitionPolicy
}

// NewGetAvailableActionsQueryHandler creates a handler for available-actions queries.
func NewGetAvailableActionsQueryHandler(db *gorm.DB) GetAvailableActionsQueryHandler {
	return GetAvailableActionsQueryHandler{
		db:     db,
		policy: services.NewTransitionPolicy(),
	}
}

// Handle executes the query. A missing order returns errs.ErrObjectNotFound.
func (h GetAvailableActionsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableActionsQuery,
) (AvailableActionsResponse, error) {
	if err := query.Validate(); err != nil {
		return AvailableActionsResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT status, branch_id
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var status string
	var branchID uuid.NullUUID

	err := row.Scan(&status, &branchID)
	if errors.Is(err, sql.ErrNoRows) {
		return AvailableActionsResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}
	if err != nil {
		return AvailableActionsResponse{}, err
	}

	var orderBranchID *kernel.UUID
	if branchID.Valid {
		bID, bErr := kernel.UUIDFromBytes(branchID.UUID[:])
		if bErr != nil {
			return AvailableActionsResponse{}, bErr
		}
		orderBranchID = &bID
	}

	current := order.Status(status)
	if err = current.Validate(); err != nil {
		return AvailableActionsResponse{}, err
	}

	response := AvailableActionsResponse{
		CurrentStatus:     current,
		StatusDisplayName: current.DisplayName(),
		Actions:           make([]AvailableAction, 0),
	}

	for _, target := range h.policy.AvailableActions(query.Actor(), current, orderBranchID) {
		response.Actions = append(response.Actions, AvailableAction{
			Status:            target,
			StatusDisplayName: target.DisplayName(),
		})
	}

	// The problem escape hatch is offered separately from the pipeline actions.
	response.CanFlagProblem = h.policy.Authorize(query.Actor(), current, order.Problem, orderBranchID) == nil

	return response, nil
}
