package commands

import (
	"context"

	"cargotrack/internal/core/domain/model/branch"
)

// CreateBranchCommandHandler registers new pickup branches.
type CreateBranchCommandHandler struct {
	uowFactory BranchUoWFactory
}

// NewCreateBranchCommandHandler creates a handler for branch registration.
func NewCreateBranchCommandHandler(uowFactory BranchUoWFactory) CreateBranchCommandHandler {
	return CreateBranchCommandHandler{uowFactory: uowFactory}
}

// Handle persists the new branch.
func (h CreateBranchCommandHandler) Handle(ctx context.Context, cmd CreateBranchCommand) (*branch.Branch, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	b, err := branch.NewBranch(cmd.BranchID(), cmd.Name(), cmd.City(), cmd.Address(), cmd.Phone(), cmd.Code())
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

	if err = uow.BranchRepository().Add(ctx, b); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return b, nil
}
