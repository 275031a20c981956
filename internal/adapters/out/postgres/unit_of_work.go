// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work spans one business transaction: repositories
// obtained from it run inside the active transaction, and fall back to the
// base connection when none is active, which is what lets command handlers
// write best-effort trail entries after Commit.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, ord); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"gorm.io/gorm"

	"cargotrack/internal/adapters/out/postgres/auditrepo"
	"cargotrack/internal/adapters/out/postgres/branchrepo"
	"cargotrack/internal/adapters/out/postgres/employeerepo"
	"cargotrack/internal/adapters/out/postgres/orderrepo"
	"cargotrack/internal/core/ports"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection pool. Each business operation gets a fresh instance so
// concurrent operations never share transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with no active transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction across the repositories
// participating in a business operation.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a new transaction. Calling Begin again while a transaction is
// active is a no-op, never a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the current transaction. After Commit the unit of work has
// no active transaction and repositories fall back to the base connection.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the current transaction. Safe to defer unconditionally:
// after a successful Commit it returns gorm.ErrInvalidTransaction, which
// callers ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns an order repository bound to the current
// transaction, or to the base connection when none is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

// OrderHistoryRepository returns a history repository bound to the current
// transaction, or to the base connection when none is active.
func (uow *GormUnitOfWork) OrderHistoryRepository() ports.OrderHistoryRepository {
	return orderrepo.NewGormOrderHistoryRepository(uow.conn())
}

// BranchRepository returns a branch repository bound to the current
// transaction, or to the base connection when none is active.
func (uow *GormUnitOfWork) BranchRepository() ports.BranchRepository {
	return branchrepo.NewGormBranchRepository(uow.conn())
}

// EmployeeRepository returns an employee repository bound to the current
// transaction, or to the base connection when none is active.
func (uow *GormUnitOfWork) EmployeeRepository() ports.EmployeeRepository {
	return employeerepo.NewGormEmployeeRepository(uow.conn())
}

// AuditLogRepository returns an audit log repository bound to the current
// transaction, or to the base connection when none is active.
func (uow *GormUnitOfWork) AuditLogRepository() ports.AuditLogRepository {
	return auditrepo.NewGormAuditLogRepository(uow.conn())
}
