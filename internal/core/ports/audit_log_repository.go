package ports

import (
	"context"

	"cargotrack/internal/core/domain/model/audit"
)

// AuditLogRepository defines the append-only audit trail contract.
// Append failures are logged and swallowed by callers: the audit log records
// behavior, it never blocks or unwinds it.
type AuditLogRepository interface {
	Append(ctx context.Context, entry audit.Entry) error
}
