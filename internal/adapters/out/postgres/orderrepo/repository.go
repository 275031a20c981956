package orderrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"
	"cargotrack/internal/pkg/errs"
)

// uniqueViolation is the postgres error code for unique constraint violations.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order. A track-number collision is reported as
// order.ErrDuplicateTrackNumber.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return order.ErrDuplicateTrackNumber
		}
		return err
	}

	return nil
}

// UpdateStatus persists a status transition as a single conditional UPDATE
// guarded by the expected version. Zero affected rows means another writer
// already advanced the version, reported as order.ErrStaleVersion.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order, expectedVersion int) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, expectedVersion).
		Updates(map[string]any{
			"status":     dto.Status,
			"branch_id":  dto.BranchID,
			"version":    dto.Version,
			"updated_at": dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return order.ErrStaleVersion
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackNumber retrieves an order by its normalized track number.
func (r *GormOrderRepository) GetByTrackNumber(
	ctx context.Context,
	trackNumber order.TrackNumber,
) (*order.Order, error) {
	if err := trackNumber.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "track_number = ?", trackNumber.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", trackNumber.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GormOrderHistoryRepository implements ports.OrderHistoryRepository using GORM.
// The table is append-only: no update or delete paths exist.
type GormOrderHistoryRepository struct {
	db *gorm.DB
}

// NewGormOrderHistoryRepository creates a new GORM order history repository.
func NewGormOrderHistoryRepository(db *gorm.DB) *GormOrderHistoryRepository {
	return &GormOrderHistoryRepository{db: db}
}

// Append stores one immutable history entry.
func (r *GormOrderHistoryRepository) Append(ctx context.Context, entry order.HistoryEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := historyFromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListByOrder returns an order's history, oldest first.
func (r *GormOrderHistoryRepository) ListByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]order.HistoryEntry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []HistoryDTO
	err := r.db.WithContext(ctx).
		Order("changed_at, id").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	entries := make([]order.HistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, entryErr := historyToDomain(dto)
		if entryErr != nil {
			return nil, entryErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
