// Package ports defines the contracts between the domain/application core
// and infrastructure adapters, enabling dependency inversion and testability.
package ports

import (
	"context"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. A track-number uniqueness violation is
	// reported as order.ErrDuplicateTrackNumber.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateStatus persists a status transition with an optimistic-
	// concurrency guard: the row is updated only where the stored version
	// still equals expectedVersion. When another writer has already advanced
	// the version the update affects zero rows and order.ErrStaleVersion is
	// returned; the caller must re-fetch and re-attempt explicitly.
	//
	// The conditional update is a single atomic statement at the store level,
	// never a read-then-write pair.
	UpdateStatus(ctx context.Context, aggregate *order.Order, expectedVersion int) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByTrackNumber retrieves an order by its normalized track number.
	GetByTrackNumber(ctx context.Context, trackNumber order.TrackNumber) (*order.Order, error)
}

// OrderHistoryRepository defines the append-only history contract.
// Entries are never updated or deleted, which makes them race-free by
// construction.
type OrderHistoryRepository interface {
	// Append stores one immutable history entry.
	Append(ctx context.Context, entry order.HistoryEntry) error

	// ListByOrder returns an order's history, oldest first.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]order.HistoryEntry, error)
}
