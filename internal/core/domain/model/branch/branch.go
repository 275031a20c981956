// Package branch contains the Branch aggregate: a physical pickup location
// referenced by orders and by branch-worker employees for authorization
// scoping.
package branch

import (
	"errors"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/pkg/errs"
)

// ErrBranchIsNotConstructed is returned when a Branch instance was not
// created through NewBranch or RestoreBranch.
var ErrBranchIsNotConstructed = errors.New("Branch must be created via NewBranch or RestoreBranch constructor")

// Branch is a physical pickup location in Kazakhstan.
type Branch struct {
	id      kernel.UUID
	name    string
	city    string
	address string
	phone   string
	code    string

	isConstructed bool
}

// NewBranch creates a validated branch. Name, city, and code are required;
// code is the short identifier printed on parcel labels.
func NewBranch(id kernel.UUID, name, city, address, phone, code string) (*Branch, error) {
	b := &Branch{
		address:       address,
		phone:         phone,
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setName(name),
		b.setCity(city),
		b.setCode(code),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBranch rehydrates a branch from persistence.
func RestoreBranch(id kernel.UUID, name, city, address, phone, code string) (*Branch, error) {
	return NewBranch(id, name, city, address, phone, code)
}

// Validate ensures the Branch instance was properly constructed.
func (b *Branch) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBranchIsNotConstructed
	}
	return nil
}

// ID returns the branch's unique identifier.
func (b *Branch) ID() kernel.UUID {
	return b.id
}

// Name returns the branch display name.
func (b *Branch) Name() string {
	return b.name
}

// City returns the branch city.
func (b *Branch) City() string {
	return b.city
}

// Address returns the street address, possibly empty.
func (b *Branch) Address() string {
	return b.address
}

// Phone returns the contact phone, possibly empty.
func (b *Branch) Phone() string {
	return b.phone
}

// Code returns the short branch code.
func (b *Branch) Code() string {
	return b.code
}

func (b *Branch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Branch) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	b.name = name
	return nil
}

func (b *Branch) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	b.city = city
	return nil
}

func (b *Branch) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	b.code = code
	return nil
}
