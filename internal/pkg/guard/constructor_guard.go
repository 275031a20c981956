// Package guard implements the constructor-guard pattern used by commands,
// queries, and value objects to reject zero-value instances that bypassed
// their designated constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes properly constructed objects from zero values.
// Embed it in a struct and set it via NewConstructorGuard inside the
// constructor; Validate then fails on any instance created another way.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for constructed objects. For zero-value guards it
// returns validationError, or ErrDefaultConstructorGuard when that is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
