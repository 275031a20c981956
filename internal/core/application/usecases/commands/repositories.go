// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS split.
// All commands follow a consistent shape: validated constructor, transaction
// management in the handler, and persistence through ports.
package commands

import (
	"context"

	"cargotrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// HistoryRepoFactory provides access to the order history repository within a transaction.
	HistoryRepoFactory interface {
		OrderHistoryRepository() ports.OrderHistoryRepository
	}

	// AuditRepoFactory provides access to the audit log repository within a transaction.
	AuditRepoFactory interface {
		AuditLogRepository() ports.AuditLogRepository
	}

	// BranchRepoFactory provides access to the branch repository within a transaction.
	BranchRepoFactory interface {
		BranchRepository() ports.BranchRepository
	}

	// EmployeeRepoFactory provides access to the employee repository within a transaction.
	EmployeeRepoFactory interface {
		EmployeeRepository() ports.EmployeeRepository
	}

	// OrderUoW manages transactions for order mutations, including the
	// history and audit trails written alongside them.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		HistoryRepoFactory
		AuditRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// BranchUoW manages transactions for branch-only operations.
	BranchUoW interface {
		TxManager
		BranchRepoFactory
		AuditRepoFactory
	}

	// BranchUoWFactory creates new branch unit of work instances.
	BranchUoWFactory interface {
		Create() BranchUoW
	}

	// EmployeeUoW manages transactions for employee-account operations.
	EmployeeUoW interface {
		TxManager
		EmployeeRepoFactory
		AuditRepoFactory
	}

	// EmployeeUoWFactory creates new employee unit of work instances.
	EmployeeUoWFactory interface {
		Create() EmployeeUoW
	}
)
