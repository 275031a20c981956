package postgres

import (
	"gorm.io/gorm"

	"cargotrack/internal/adapters/out/postgres/auditrepo"
	"cargotrack/internal/adapters/out/postgres/branchrepo"
	"cargotrack/internal/adapters/out/postgres/employeerepo"
	"cargotrack/internal/adapters/out/postgres/orderrepo"
)

// RunMigrations creates or updates the full schema.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&branchrepo.BranchDTO{},
		&employeerepo.EmployeeDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.HistoryDTO{},
		&auditrepo.AuditLogDTO{},
	)
}
