// Package kernel contains shared value objects used across the domain model.
package kernel

import (
	"fmt"

	"cargotrack/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates a zero-value UUID that bypassed the
// constructor functions.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError(
	"UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is an immutable identifier value object wrapping github.com/google/uuid.
// The zero value is invalid; construct via NewUUID, UUIDFromString, or
// UUIDFromBytes.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) UUID.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses a UUID from its canonical string representation.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	if id == uuid.Nil {
		return UUID{}, ErrUUIDIsNotConstructed
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes reconstructs a UUID from its 16-byte representation,
// typically when rehydrating entities from persistence.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID bytes: %w", err)
	}
	if id == uuid.Nil {
		return UUID{}, ErrUUIDIsNotConstructed
	}
	return UUID{id: id}, nil
}

// Validate returns ErrUUIDIsNotConstructed for zero-value UUIDs.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

// IsEqual reports whether two UUIDs carry the same identifier.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// String returns the canonical string form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID, used by persistence DTOs.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}
