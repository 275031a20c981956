package ports

import (
	"context"

	"cargotrack/internal/core/domain/model/branch"
	"cargotrack/internal/core/domain/model/kernel"
)

// BranchRepository defines the persistence contract for branch aggregates.
type BranchRepository interface {
	// Add persists a new branch.
	Add(ctx context.Context, aggregate *branch.Branch) error

	// Get retrieves a branch by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*branch.Branch, error)

	// GetAll returns all branches ordered by name.
	GetAll(ctx context.Context) ([]*branch.Branch, error)
}
