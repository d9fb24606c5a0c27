package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// newArtifactSweepTask creates the scheduled task function that removes
// stale screenshot files from the render output directory. Artifacts are
// normally deleted right after upload; the sweep catches files orphaned
// by crashes or failed uploads.
func newArtifactSweepTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "artifact_sweep")

	return func(ctx context.Context) error {
		log.InfoContext(ctx, "Starting scheduled artifact sweep task...")
		startTime := time.Now()

		scanned, removed, err := sweepArtifacts(ctx, log, deps.Config.Render.OutputDir, deps.Config.Render.ArtifactMaxAge)

		duration := time.Since(startTime)

		if err != nil {
			log.ErrorContext(ctx, "Artifact sweep task failed", "error", err, "duration", duration)

			return fmt.Errorf("artifact sweep failed: %w", err)
		}

		log.InfoContext(ctx, "Scheduled artifact sweep task completed successfully",
			"scanned", scanned, "removed", removed, "duration", duration)

		return nil
	}
}

// sweepArtifacts deletes screenshot files in dir whose modification time
// is older than maxAge. It returns how many files it scanned and removed.
func sweepArtifacts(ctx context.Context, log *slog.Logger, dir string, maxAge time.Duration) (int, int, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "screenshot_*.png"))
	if err != nil {
		return 0, 0, fmt.Errorf("globbing artifacts in %s: %w", dir, err)
	}

	cutoff := time.Now().Add(-maxAge)
	scanned := 0
	removed := 0

	for _, path := range matches {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return scanned, removed, ctxErr
		}

		scanned++

		info, statErr := os.Stat(path)
		if statErr != nil {
			// The upload handler removes its own artifact when done, so a
			// file can vanish between glob and stat.
			continue
		}

		if info.ModTime().After(cutoff) {
			continue
		}

		if removeErr := os.Remove(path); removeErr != nil {
			log.WarnContext(ctx, "Failed to remove stale artifact", "path", path, "error", removeErr)

			continue
		}

		removed++
	}

	return scanned, removed, nil
}
