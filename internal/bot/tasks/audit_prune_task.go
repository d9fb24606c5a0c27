package tasks

import (
	"context"
	"fmt"
	"time"
)

// newAuditPruneTask creates the scheduled task function that deletes
// render audit rows older than the configured retention period.
func newAuditPruneTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "audit_prune")

	return func(ctx context.Context) error {
		log.InfoContext(ctx, "Starting scheduled audit prune task...")
		startTime := time.Now()

		cutoff := time.Now().UTC().Add(-deps.Config.Database.AuditRetention)
		deleted, err := deps.Store.DeleteRendersBefore(ctx, cutoff)

		duration := time.Since(startTime)

		if err != nil {
			log.ErrorContext(ctx, "Audit prune task failed", "error", err, "duration", duration)

			return fmt.Errorf("audit prune failed: %w", err)
		}

		log.InfoContext(ctx, "Scheduled audit prune task completed successfully",
			"deleted", deleted, "cutoff", cutoff, "duration", duration)

		return nil
	}
}
