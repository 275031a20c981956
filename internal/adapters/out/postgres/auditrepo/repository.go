// Package auditrepo persists the append-only audit log. Payloads are stored
// as JSONB so they stay queryable without a fixed schema.
package auditrepo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cargotrack/internal/core/domain/model/audit"
)

// AuditLogDTO represents one persisted audit record.
type AuditLogDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	ActorID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Action     string    `gorm:"type:varchar(64);index;not null"`
	Payload    []byte    `gorm:"type:jsonb"`
	OccurredAt time.Time `gorm:"index;not null"`
}

// TableName specifies the database table name for audit records.
func (AuditLogDTO) TableName() string {
	return "audit_log"
}

// GormAuditLogRepository implements ports.AuditLogRepository using GORM.
type GormAuditLogRepository struct {
	db *gorm.DB
}

// NewGormAuditLogRepository creates a new GORM audit log repository.
func NewGormAuditLogRepository(db *gorm.DB) *GormAuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// Append stores one immutable audit record.
func (r *GormAuditLogRepository) Append(ctx context.Context, entry audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	var payload []byte
	if entry.Payload() != nil {
		var err error
		payload, err = json.Marshal(entry.Payload())
		if err != nil {
			return err
		}
	}

	dto := AuditLogDTO{
		ActorID:    entry.ActorID().Bytes(),
		Action:     entry.Action(),
		Payload:    payload,
		OccurredAt: entry.OccurredAt(),
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}
