package commands

import (
	"context"
	"log/slog"

	"cargotrack/internal/core/domain/model/audit"
	"cargotrack/internal/core/domain/model/order"
)

// CreateOrderCommandHandler registers new parcel orders.
// Orders start in the created status with version 1 and exactly one history
// entry, so history.length == version holds from the very first write.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order registration.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "create_order"),
	}
}

// Handle persists the order and its initial history entry in one transaction.
// A track-number collision surfaces order.ErrDuplicateTrackNumber.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actorID := cmd.Actor().ID()
	ord, err := order.NewOrder(cmd.OrderID(), cmd.TrackNumber(), cmd.BranchID(), cmd.ClientID(), &actorID)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, ord); err != nil {
		return nil, err
	}

	entry, err := order.NewHistoryEntry(ord.ID(), order.Created, actorID, "")
	if err != nil {
		return nil, err
	}
	if err = uow.OrderHistoryRepository().Append(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.appendAudit(ctx, uow, ord)

	return ord, nil
}

func (h CreateOrderCommandHandler) appendAudit(ctx context.Context, uow OrderUoW, ord *order.Order) {
	payload := map[string]any{
		"orderId":     ord.ID().String(),
		"trackNumber": ord.TrackNumber().String(),
	}

	entry, err := audit.NewEntry(*ord.CreatedBy(), audit.ActionOrderCreated, payload)
	if err == nil {
		err = uow.AuditLogRepository().Append(ctx, entry)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "audit log append failed",
			"order_id", ord.ID().String(),
			"error", err)
	}
}
