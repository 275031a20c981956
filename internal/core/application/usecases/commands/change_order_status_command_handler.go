package commands

import (
	"context"
	"log/slog"

	"cargotrack/internal/core/domain/model/audit"
	"cargotrack/internal/core/domain/model/employee"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"
	"cargotrack/internal/core/domain/services"
	"cargotrack/internal/core/ports"
)

// ChangeOrderStatusCommandHandler is the transition executor: it applies an
// authorized status transition exactly once under concurrent-writer
// contention, recording provenance.
//
// Commit protocol:
//  1. fetch the order and capture its version
//  2. re-evaluate the transition policy against the fresh state (a
//     previously computed available-actions list is never trusted)
//  3. enforce contextual preconditions (problem reason, destination branch)
//  4. conditional update guarded by the captured version; zero affected rows
//     surface order.ErrStaleVersion and the actor must explicitly retry
//  5. append one history entry, one audit entry, and publish one integration
//     event — all best-effort: the status reflects the physical reality of
//     the parcel and is never rolled back to paper over a bookkeeping failure
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.TransitionPolicy
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates the transition executor.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewTransitionPolicy(),
		publisher:  publisher,
		logger:     logger.With("component", "change_order_status"),
	}
}

// Handle applies the transition and returns the updated order.
// Typed failures (ErrStaleVersion, ErrIllegalTransition, ErrRoleNotPermitted,
// ErrBranchMismatch, ErrProblemReasonRequired, ErrBranchRequired) pass
// through unwrapped so the boundary can show the actor the specific reason.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	target := cmd.TargetStatus()
	if target == order.Problem && cmd.Note() == "" {
		return nil, ErrProblemReasonRequired
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.policy.Authorize(cmd.Actor(), ord.Status(), target, ord.BranchID()); err != nil {
		return nil, err
	}

	var branchID *kernel.UUID
	if target == order.ArrivedBranch {
		branchID, err = resolveBranch(cmd)
		if err != nil {
			return nil, err
		}
	}

	oldStatus := ord.Status()
	expectedVersion := ord.Version()

	if err = ord.ApplyTransition(target, branchID); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateStatus(ctx, ord, expectedVersion); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// Past this point the transition is durable; the trail is best-effort.
	h.appendHistory(ctx, uow, ord, cmd)
	h.appendAudit(ctx, uow, ord, oldStatus, cmd)
	h.publishEvent(ctx, ord, oldStatus, cmd)

	return ord, nil
}

// resolveBranch picks the destination branch for arrived_branch: the explicit
// choice wins, then the acting branch worker's own branch.
func resolveBranch(cmd ChangeOrderStatusCommand) (*kernel.UUID, error) {
	if cmd.BranchID() != nil {
		return cmd.BranchID(), nil
	}
	if cmd.Actor().Role() == employee.BranchWorker && cmd.Actor().BranchID() != nil {
		return cmd.Actor().BranchID(), nil
	}
	return nil, ErrBranchRequired
}

func (h ChangeOrderStatusCommandHandler) appendHistory(
	ctx context.Context,
	uow OrderUoW,
	ord *order.Order,
	cmd ChangeOrderStatusCommand,
) {
	entry, err := order.NewHistoryEntry(ord.ID(), ord.Status(), cmd.Actor().ID(), cmd.Note())
	if err == nil {
		err = uow.OrderHistoryRepository().Append(ctx, entry)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "status advanced but history append failed",
			"order_id", ord.ID().String(),
			"status", ord.Status().String(),
			"error", err)
	}
}

func (h ChangeOrderStatusCommandHandler) appendAudit(
	ctx context.Context,
	uow OrderUoW,
	ord *order.Order,
	oldStatus order.Status,
	cmd ChangeOrderStatusCommand,
) {
	payload := map[string]any{
		"orderId":     ord.ID().String(),
		"trackNumber": ord.TrackNumber().String(),
		"oldStatus":   oldStatus.String(),
		"newStatus":   ord.Status().String(),
	}
	if cmd.Note() != "" {
		payload["note"] = cmd.Note()
	}
	if ord.Status() == order.ArrivedBranch && ord.BranchID() != nil {
		payload["branchId"] = ord.BranchID().String()
	}

	entry, err := audit.NewEntry(cmd.Actor().ID(), audit.ActionOrderStatusUpdate, payload)
	if err == nil {
		err = uow.AuditLogRepository().Append(ctx, entry)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "audit log append failed",
			"order_id", ord.ID().String(),
			"error", err)
	}
}

func (h ChangeOrderStatusCommandHandler) publishEvent(
	ctx context.Context,
	ord *order.Order,
	oldStatus order.Status,
	cmd ChangeOrderStatusCommand,
) {
	event := ports.OrderStatusChangedEvent{
		OrderID:     ord.ID().String(),
		TrackNumber: ord.TrackNumber().String(),
		OldStatus:   oldStatus.String(),
		NewStatus:   ord.Status().String(),
		ActorID:     cmd.Actor().ID().String(),
		OccurredAt:  ord.UpdatedAt(),
	}
	if ord.BranchID() != nil {
		event.BranchID = ord.BranchID().String()
	}

	if err := h.publisher.PublishStatusChanged(ctx, event); err != nil {
		h.logger.WarnContext(ctx, "order status event publish failed",
			"order_id", ord.ID().String(),
			"error", err)
	}
}
