package commands

import (
	"errors"

	"cargotrack/internal/core/domain/model/employee"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/pkg/errs"
	"cargotrack/internal/pkg/guard"
)

var ErrCreateBranchCommandIsNotConstructed = errors.New(
	"CreateBranchCommand must be created via NewCreateBranchCommand constructor",
)

// CreateBranchCommand represents a request to register a new pickup branch.
type CreateBranchCommand struct { //nolint:recvcheck //using for validation
	branchID kernel.UUID
	name     string
	city     string
	address  string
	phone    string
	code     string
	actor    employee.Actor

	guard guard.ConstructorGuard
}

// NewCreateBranchCommand creates a validated branch-creation command.
func NewCreateBranchCommand(
	branchID kernel.UUID,
	name, city, address, phone, code string,
	actor employee.Actor,
) (CreateBranchCommand, error) {
	cmd := CreateBranchCommand{
		address: address,
		phone:   phone,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBranchID(branchID),
		cmd.setRequired("name", name, &cmd.name),
		cmd.setRequired("city", city, &cmd.city),
		cmd.setRequired("code", code, &cmd.code),
		cmd.setActor(actor),
	); err != nil {
		return CreateBranchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBranchCommand) Validate() error {
	return c.guard.Validate(ErrCreateBranchCommandIsNotConstructed)
}

// BranchID returns the identifier for the new branch.
func (c CreateBranchCommand) BranchID() kernel.UUID { return c.branchID }

// Name returns the branch display name.
func (c CreateBranchCommand) Name() string { return c.name }

// City returns the branch city.
func (c CreateBranchCommand) City() string { return c.city }

// Address returns the optional street address.
func (c CreateBranchCommand) Address() string { return c.address }

// Phone returns the optional contact phone.
func (c CreateBranchCommand) Phone() string { return c.phone }

// Code returns the short branch code.
func (c CreateBranchCommand) Code() string { return c.code }

// Actor returns the acting employee context.
func (c CreateBranchCommand) Actor() employee.Actor { return c.actor }

func (c *CreateBranchCommand) setBranchID(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return err
	}
	c.branchID = branchID
	return nil
}

func (c *CreateBranchCommand) setRequired(param, value string, field *string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	*field = value
	return nil
}

func (c *CreateBranchCommand) setActor(actor employee.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
