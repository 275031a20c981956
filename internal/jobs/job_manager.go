package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"cargotrack/internal/core/application/usecases/queries"
	"cargotrack/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stuckOrderJob *StuckOrderJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	stuckOrdersHandler queries.GetStuckOrdersQueryHandler,
	auditLog ports.AuditLogRepository,
	stuckThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		stuckOrderJob: NewStuckOrderJob(stuckOrdersHandler, auditLog, stuckThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stuckOrderJob.Start(); err != nil {
		return fmt.Errorf("failed to start stuck order job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stuckOrderJob.Stop()
}
