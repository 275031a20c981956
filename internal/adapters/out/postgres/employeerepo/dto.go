// Package employeerepo provides data transfer objects and mapping functions
// for employee account persistence.
package employeerepo

import (
	"github.com/google/uuid"

	"cargotrack/internal/core/domain/model/employee"
	"cargotrack/internal/core/domain/model/kernel"
)

// EmployeeDTO represents the database structure for persisting employee
// accounts. Logins are unique; only the bcrypt hash of the password is stored.
type EmployeeDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name         string     `gorm:"type:varchar(255);not null"`
	Login        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	Role         string     `gorm:"type:varchar(32);not null"`
	BranchID     *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for employee entities.
func (EmployeeDTO) TableName() string {
	return "employees"
}

func fromDomain(aggregate *employee.Employee) EmployeeDTO {
	var branchID *uuid.UUID
	if id := aggregate.BranchID(); id != nil {
		raw := id.Bytes()
		branchID = &raw
	}

	return EmployeeDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Login:        aggregate.Login(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         aggregate.Role().String(),
		BranchID:     branchID,
	}
}

func toDomain(dto EmployeeDTO) (*employee.Employee, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var branchID *kernel.UUID
	if dto.BranchID != nil {
		bID, branchErr := kernel.UUIDFromBytes((*dto.BranchID)[:])
		if branchErr != nil {
			return nil, branchErr
		}
		branchID = &bID
	}

	return employee.RestoreEmployee(id, dto.Name, dto.Login, dto.PasswordHash, employee.Role(dto.Role), branchID)
}
