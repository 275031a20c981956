package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repositories bound to the current
// transaction. Client code manages the transaction lifecycle explicitly.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction, or to the base connection when none is active.
	OrderRepository() OrderRepository

	// OrderHistoryRepository returns an OrderHistoryRepository bound to the
	// current transaction, or to the base connection when none is active.
	OrderHistoryRepository() OrderHistoryRepository

	// BranchRepository returns a BranchRepository bound to the current
	// transaction, or to the base connection when none is active.
	BranchRepository() BranchRepository

	// EmployeeRepository returns an EmployeeRepository bound to the current
	// transaction, or to the base connection when none is active.
	EmployeeRepository() EmployeeRepository

	// AuditLogRepository returns an AuditLogRepository bound to the current
	// transaction, or to the base connection when none is active.
	AuditLogRepository() AuditLogRepository
}
