// Package orderrepo provides data transfer objects and mapping functions for
// order and order-history persistence.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The version column carries the optimistic-concurrency token; the track
// number is unique across all orders.
type OrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackNumber string     `gorm:"type:varchar(60);uniqueIndex;not null"`
	Status      string     `gorm:"type:varchar(32);index;not null"`
	BranchID    *uuid.UUID `gorm:"type:uuid;index"`
	ClientID    *int64     `gorm:"type:bigint"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid"`
	Version     int        `gorm:"not null"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"index;not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// HistoryDTO represents one row of the append-only order history.
type HistoryDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Status    string    `gorm:"type:varchar(32);not null"`
	ChangedBy uuid.UUID `gorm:"type:uuid;not null"`
	Note      string    `gorm:"type:text"`
	ChangedAt time.Time `gorm:"index;not null"`
}

// TableName specifies the database table name for history entries.
func (HistoryDTO) TableName() string {
	return "order_history"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var branchID *uuid.UUID
	if id := aggregate.BranchID(); id != nil {
		raw := id.Bytes()
		branchID = &raw
	}

	var createdBy *uuid.UUID
	if id := aggregate.CreatedBy(); id != nil {
		raw := id.Bytes()
		createdBy = &raw
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		TrackNumber: aggregate.TrackNumber().String(),
		Status:      aggregate.Status().String(),
		BranchID:    branchID,
		ClientID:    aggregate.ClientID(),
		CreatedBy:   createdBy,
		Version:     aggregate.Version(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackNumber, err := order.NewTrackNumber(dto.TrackNumber)
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

	var createdBy *kernel.UUID
	if dto.CreatedBy != nil {
		cID, createdErr := kernel.UUIDFromBytes((*dto.CreatedBy)[:])
		if createdErr != nil {
			return nil, createdErr
		}
		createdBy = &cID
	}

	return order.RestoreOrder(
		id,
		trackNumber,
		order.Status(dto.Status),
		branchID,
		dto.ClientID,
		createdBy,
		dto.Version,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func historyFromDomain(entry order.HistoryEntry) HistoryDTO {
	return HistoryDTO{
		OrderID:   entry.OrderID().Bytes(),
		Status:    entry.Status().String(),
		ChangedBy: entry.ChangedBy().Bytes(),
		Note:      entry.Note(),
		ChangedAt: entry.ChangedAt(),
	}
}

func historyToDomain(dto HistoryDTO) (order.HistoryEntry, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.HistoryEntry{}, err
	}

	changedBy, err := kernel.UUIDFromBytes(dto.ChangedBy[:])
	if err != nil {
		return order.HistoryEntry{}, err
	}

	return order.RestoreHistoryEntry(orderID, order.Status(dto.Status), changedBy, dto.Note, dto.ChangedAt)
}
