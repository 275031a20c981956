package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"cargotrack/internal/core/application/usecases/queries"
	"cargotrack/internal/core/domain/model/audit"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/ports"
)

// systemActorID attributes job-generated audit entries to the scheduler
// rather than to a human employee.
func systemActorID() kernel.UUID {
	id, _ := kernel.UUIDFromString("00000000-0000-0000-0000-000000000001")
	return id
}

// StuckOrderJob periodically reports orders that have sat in a non-terminal
// status for longer than the configured threshold.
// Runs hourly; branch staff act on the report the next morning.
type StuckOrderJob struct {
	handler   queries.GetStuckOrdersQueryHandler
	auditLog  ports.AuditLogRepository
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStuckOrderJob creates a job that flags stale orders older than threshold.
func NewStuckOrderJob(
	handler queries.GetStuckOrdersQueryHandler,
	auditLog ports.AuditLogRepository,
	threshold time.Duration,
	logger *slog.Logger,
) *StuckOrderJob {
	return &StuckOrderJob{
		handler:   handler,
		auditLog:  auditLog,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stuck_order_job"),
	}
}

// Start begins the stuck order job to run at the top of every hour.
func (j *StuckOrderJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		j.run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stuck order job started (running hourly)",
		"threshold", j.threshold.String())
	return nil
}

// Stop stops the stuck order job.
func (j *StuckOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stuck order job stopped")
}

func (j *StuckOrderJob) run(ctx context.Context) {
	query, err := queries.NewGetStuckOrdersQuery(j.threshold)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stuck order job misconfigured", "error", err)
		return
	}

	stuck, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stuck order scan failed", "error", err)
		return
	}
	if len(stuck) == 0 {
		return
	}

	for _, row := range stuck {
		j.logger.WarnContext(ctx, "Order stuck without progress",
			"order_id", row.ID.String(),
			"track_number", row.TrackNumber,
			"status", row.Status.String(),
			"stuck_for", row.StuckFor.String())

		entry, err := audit.NewEntry(systemActorID(), audit.ActionStuckOrderReport, map[string]any{
			"order_id":        row.ID.String(),
			"track_number":    row.TrackNumber,
			"status":          row.Status.String(),
			"stuck_for_hours": row.StuckFor.Hours(),
		})
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build stuck order audit entry", "error", err)
			continue
		}
		if err = j.auditLog.Append(ctx, entry); err != nil {
			j.logger.ErrorContext(ctx, "Failed to record stuck order report", "error", err)
		}
	}

	j.logger.InfoContext(ctx, "Stuck order scan finished", "count", len(stuck))
}
