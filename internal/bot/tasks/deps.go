// Package tasks implements the scheduled maintenance jobs for the
// screenshot bot: sweeping leftover image artifacts, pruning old audit
// rows, and running database maintenance.
package tasks

import (
	"log/slog"

	"github.com/voidxprt/screenshotbotv1-discord/internal/config"
	"github.com/voidxprt/screenshotbotv1-discord/internal/database"
)

// TaskDeps contains all dependencies required by scheduled tasks.
// It provides access to logging, the database store, and configuration.
type TaskDeps struct {
	Logger *slog.Logger
	Store  database.Store
	Config *config.Config
}
