package commands

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"cargotrack/internal/core/domain/model/employee"
)

// RegisterEmployeeCommandHandler creates new employee accounts.
type RegisterEmployeeCommandHandler struct {
	uowFactory EmployeeUoWFactory
}

// NewRegisterEmployeeCommandHandler creates a handler for employee registration.
func NewRegisterEmployeeCommandHandler(uowFactory EmployeeUoWFactory) RegisterEmployeeCommandHandler {
	return RegisterEmployeeCommandHandler{uowFactory: uowFactory}
}

// Handle hashes the password and persists the new account. A login collision
// surfaces employee.ErrDuplicateLogin.
func (h RegisterEmployeeCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterEmployeeCommand,
) (*employee.Employee, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	emp, err := employee.NewEmployee(
		cmd.EmployeeID(),
		cmd.Name(),
		cmd.Login(),
		string(hash),
		cmd.Role(),
		cmd.BranchID(),
	)
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

	if err = uow.EmployeeRepository().Add(ctx, emp); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return emp, nil
}
