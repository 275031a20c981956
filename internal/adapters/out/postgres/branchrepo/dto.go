// Package branchrepo provides data transfer objects and mapping functions for
// branch persistence.
package branchrepo

import (
	"github.com/google/uuid"

	"cargotrack/internal/core/domain/model/branch"
	"cargotrack/internal/core/domain/model/kernel"
)

// BranchDTO represents the database structure for persisting branches.
// The short code is unique across branches.
type BranchDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"type:varchar(255);not null"`
	City    string    `gorm:"type:varchar(255);index;not null"`
	Address string    `gorm:"type:varchar(512)"`
	Phone   string    `gorm:"type:varchar(32)"`
	Code    string    `gorm:"type:varchar(16);uniqueIndex;not null"`
}

// TableName specifies the database table name for branch entities.
func (BranchDTO) TableName() string {
	return "branches"
}

func fromDomain(aggregate *branch.Branch) BranchDTO {
	return BranchDTO{
		ID:      aggregate.ID().Bytes(),
		Name:    aggregate.Name(),
		City:    aggregate.City(),
		Address: aggregate.Address(),
		Phone:   aggregate.Phone(),
		Code:    aggregate.Code(),
	}
}

func toDomain(dto BranchDTO) (*branch.Branch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return branch.RestoreBranch(id, dto.Name, dto.City, dto.Address, dto.Phone, dto.Code)
}
