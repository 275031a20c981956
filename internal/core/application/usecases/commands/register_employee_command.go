package commands

import (
	"errors"

	"cargotrack/internal/core/domain/model/employee"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/pkg/errs"
	"cargotrack/internal/pkg/guard"
)

var ErrRegisterEmployeeCommandIsNotConstructed = errors.New(
	"RegisterEmployeeCommand must be created via NewRegisterEmployeeCommand constructor",
)

// Plaintext password length bounds. The upper bound matches bcrypt's input limit.
const (
	minPasswordLength = 8
	maxPasswordLength = 72
)

// RegisterEmployeeCommand represents a request to register a new employee
// account. It carries the plaintext password; hashing happens in the handler
// so the domain never stores plaintext.
type RegisterEmployeeCommand struct { //nolint:recvcheck //using for validation
	employeeID kernel.UUID
	name       string
	login      string
	password   string
	role       employee.Role
	branchID   *kernel.UUID
	actor      employee.Actor

	guard guard.ConstructorGuard
}

// NewRegisterEmployeeCommand creates a validated employee-registration command.
func NewRegisterEmployeeCommand(
	employeeID kernel.UUID,
	name, login, password string,
	role employee.Role,
	branchID *kernel.UUID,
	actor employee.Actor,
) (RegisterEmployeeCommand, error) {
	cmd := RegisterEmployeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmployeeID(employeeID),
		cmd.setName(name),
		cmd.setLogin(login),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterEmployeeCommand{}, err
	}

	if err := errors.Join(
		cmd.setBranchID(branchID),
		cmd.setActor(actor),
	); err != nil {
		return RegisterEmployeeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrRegisterEmployeeCommandIsNotConstructed)
}

// EmployeeID returns the identifier for the new account.
func (c RegisterEmployeeCommand) EmployeeID() kernel.UUID { return c.employeeID }

// Name returns the employee display name.
func (c RegisterEmployeeCommand) Name() string { return c.name }

// Login returns the unique sign-in login.
func (c RegisterEmployeeCommand) Login() string { return c.login }

// Password returns the plaintext password to be hashed by the handler.
func (c RegisterEmployeeCommand) Password() string { return c.password }

// Role returns the role of the new account.
func (c RegisterEmployeeCommand) Role() employee.Role { return c.role }

// BranchID returns the branch association, required for branch workers.
func (c RegisterEmployeeCommand) BranchID() *kernel.UUID { return c.branchID }

// Actor returns the acting employee context.
func (c RegisterEmployeeCommand) Actor() employee.Actor { return c.actor }

func (c *RegisterEmployeeCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}
	c.employeeID = employeeID
	return nil
}

func (c *RegisterEmployeeCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterEmployeeCommand) setLogin(login string) error {
	if login == "" {
		return errs.NewValueIsRequiredError("login")
	}
	c.login = login
	return nil
}

func (c *RegisterEmployeeCommand) setPassword(password string) error {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return errs.NewValueIsOutOfRangeError("password", len(password), minPasswordLength, maxPasswordLength)
	}
	c.password = password
	return nil
}

func (c *RegisterEmployeeCommand) setRole(role employee.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}

func (c *RegisterEmployeeCommand) setBranchID(branchID *kernel.UUID) error {
	if branchID == nil {
		if c.role == employee.BranchWorker {
			return errs.NewValueIsRequiredError("branchId")
		}
		return nil
	}
	if err := branchID.Validate(); err != nil {
		return err
	}
	c.branchID = branchID
	return nil
}

func (c *RegisterEmployeeCommand) setActor(actor employee.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
