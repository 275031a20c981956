package branchrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cargotrack/internal/core/domain/model/branch"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/pkg/errs"
)

// GormBranchRepository implements ports.BranchRepository using GORM.
type GormBranchRepository struct {
	db *gorm.DB
}

// NewGormBranchRepository creates a new GORM branch repository.
func NewGormBranchRepository(db *gorm.DB) *GormBranchRepository {
	return &GormBranchRepository{db: db}
}

// Add saves a new branch.
func (r *GormBranchRepository) Add(ctx context.Context, aggregate *branch.Branch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a branch by ID.
func (r *GormBranchRepository) Get(ctx context.Context, id kernel.UUID) (*branch.Branch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BranchDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("branch", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll returns all branches ordered by name.
func (r *GormBranchRepository) GetAll(ctx context.Context) ([]*branch.Branch, error) {
	var dtos []BranchDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	branches := make([]*branch.Branch, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}

	return branches, nil
}
