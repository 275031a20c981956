package employee

import (
	"errors"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/pkg/errs"
)

// ErrEmployeeIsNotConstructed is returned when an Employee instance was not
// created through NewEmployee or RestoreEmployee.
var ErrEmployeeIsNotConstructed = errors.New("Employee must be created via NewEmployee or RestoreEmployee constructor")

// ErrDuplicateLogin is returned when persisting an employee whose login is
// already taken.
var ErrDuplicateLogin = errors.New("employee login already exists")

// Employee is an aggregate representing a back-office worker account.
//
// Invariants:
//   - login is non-empty and unique (enforced at persistence)
//   - role is a member of the closed role set
//   - branch workers always reference the branch they operate
type Employee struct {
	id           kernel.UUID
	name         string
	login        string
	passwordHash string
	role         Role
	branchID     *kernel.UUID

	isConstructed bool
}

// NewEmployee creates a validated employee account. passwordHash is the
// bcrypt hash computed by the application layer; the domain never sees the
// plaintext password.
func NewEmployee(
	id kernel.UUID,
	name string,
	login string,
	passwordHash string,
	role Role,
	branchID *kernel.UUID,
) (*Employee, error) {
	emp := &Employee{isConstructed: true}

	if err := errors.Join(
		emp.setID(id),
		emp.setName(name),
		emp.setLogin(login),
		emp.setPasswordHash(passwordHash),
		emp.setRole(role),
	); err != nil {
		return nil, err
	}

	if err := emp.setBranchID(branchID); err != nil {
		return nil, err
	}

	return emp, nil
}

// RestoreEmployee rehydrates an employee from persistence.
func RestoreEmployee(
	id kernel.UUID,
	name string,
	login string,
	passwordHash string,
	role Role,
	branchID *kernel.UUID,
) (*Employee, error) {
	return NewEmployee(id, name, login, passwordHash, role, branchID)
}

// Validate ensures the Employee instance was properly constructed.
func (e *Employee) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEmployeeIsNotConstructed
	}
	return nil
}

// ID returns the employee's unique identifier.
func (e *Employee) ID() kernel.UUID {
	return e.id
}

// Name returns the employee's display name.
func (e *Employee) Name() string {
	return e.name
}

// Login returns the unique sign-in login.
func (e *Employee) Login() string {
	return e.login
}

// PasswordHash returns the stored bcrypt hash.
func (e *Employee) PasswordHash() string {
	return e.passwordHash
}

// Role returns the employee's role.
func (e *Employee) Role() Role {
	return e.role
}

// BranchID returns the employee's branch, nil for non-branch roles.
func (e *Employee) BranchID() *kernel.UUID {
	return e.branchID
}

// AsActor derives the request-scoped actor context for this employee.
func (e *Employee) AsActor() (Actor, error) {
	return NewActor(e.id, e.role, e.branchID)
}

func (e *Employee) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Employee) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	e.name = name
	return nil
}

func (e *Employee) setLogin(login string) error {
	if login == "" {
		return errs.NewValueIsRequiredError("login")
	}
	e.login = login
	return nil
}

func (e *Employee) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	e.passwordHash = passwordHash
	return nil
}

func (e *Employee) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	e.role = role
	return nil
}

// setBranchID runs after setRole: branch workers must reference a branch.
func (e *Employee) setBranchID(branchID *kernel.UUID) error {
	if branchID == nil {
		if e.role == BranchWorker {
			return errs.NewValueIsRequiredError("branchId")
		}
		return nil
	}
	if err := branchID.Validate(); err != nil {
		return err
	}
	e.branchID = branchID
	return nil
}
