package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
)

// Store defines the interface for render audit log operations. Methods
// accept context.Context for cancellation and timeouts.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// RecordRender inserts one audit row for a generated screenshot.
	RecordRender(ctx context.Context, render *Render) error

	// GetGuildStats aggregates render counts and the most recent render
	// time for a guild.
	GetGuildStats(ctx context.Context, guildID string) (*GuildStats, error)

	// DeleteRendersBefore removes audit rows created before the cutoff
	// and returns the number deleted.
	DeleteRendersBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// RunSQLMaintenance performs database maintenance tasks like VACUUM.
	RunSQLMaintenance(ctx context.Context) error
}

// sqlxStore provides an implementation of the Store interface using sqlx.
type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStore creates a new Store implementation backed by sqlx.
// It requires a connected sqlx.DB instance and a logger.
func NewStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "store"),
	}
}

// Ping checks the database connection.
func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// RecordRender inserts one audit row for a generated screenshot.
func (s *sqlxStore) RecordRender(ctx context.Context, render *Render) error {
	if render == nil {
		return fmt.Errorf("cannot record nil render")
	}
	if render.GuildID == "" {
		return fmt.Errorf("render must have a guild_id")
	}
	if render.MessageID == "" {
		return fmt.Errorf("render must have a message_id")
	}

	render.CreatedAt = time.Now().UTC()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to begin transaction for recording render",
			"guild_id", render.GuildID, "message_id", render.MessageID, "error", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if tx != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				if !errors.Is(rollbackErr, sql.ErrTxDone) {
					s.logger.WarnContext(ctx, "Error rolling back transaction", "error", rollbackErr)
				}
			}
		}
	}()

	query := `
        INSERT INTO renders (guild_id, channel_id, message_id, requester_id, author_id, mode, width, height, created_at)
        VALUES (:guild_id, :channel_id, :message_id, :requester_id, :author_id, :mode, :width, :height, :created_at);
    `

	result, err := tx.NamedExecContext(ctx, query, render)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error recording render",
			"guild_id", render.GuildID, "message_id", render.MessageID, "error", err)
		return fmt.Errorf("failed to record render (guild %s): %w", render.GuildID, err)
	}

	id, err := result.LastInsertId()
	if err == nil {
		//nolint:gosec // integer overflow conversion is acceptable here
		render.ID = uint(id)
	} else {
		s.logger.WarnContext(ctx, "Could not retrieve last insert ID after recording render",
			"guild_id", render.GuildID, "error", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.ErrorContext(ctx, "Failed to commit transaction",
			"guild_id", render.GuildID, "message_id", render.MessageID, "error", err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	// Successfully committed, set tx to nil to avoid rollback
	tx = nil

	s.logger.DebugContext(ctx, "Render recorded successfully",
		"guild_id", render.GuildID, "message_id", render.MessageID, "render_id", render.ID)
	return nil
}

// GetGuildStats aggregates render counts and the most recent render time
// for a guild.
func (s *sqlxStore) GetGuildStats(ctx context.Context, guildID string) (*GuildStats, error) {
	if guildID == "" {
		return nil, fmt.Errorf("guild_id cannot be empty")
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var counts struct {
		Total int64 `db:"total"`
		Light int64 `db:"light"`
		Dark  int64 `db:"dark"`
	}
	countQuery := `
        SELECT COUNT(*) AS total,
               COALESCE(SUM(CASE WHEN mode = 'light' THEN 1 ELSE 0 END), 0) AS light,
               COALESCE(SUM(CASE WHEN mode = 'dark' THEN 1 ELSE 0 END), 0) AS dark
        FROM renders
        WHERE guild_id = ?;
    `
	if err := s.db.GetContext(ctx, &counts, countQuery, guildID); err != nil {
		s.logger.ErrorContext(ctx, "Error getting guild render counts", "guild_id", guildID, "error", err)
		return nil, fmt.Errorf("failed to get render stats for guild %s: %w", guildID, err)
	}

	stats := &GuildStats{Total: counts.Total, Light: counts.Light, Dark: counts.Dark}

	var last time.Time
	lastQuery := `SELECT created_at FROM renders WHERE guild_id = ? ORDER BY created_at DESC LIMIT 1;`
	err := s.db.GetContext(ctx, &last, lastQuery, guildID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// No renders yet; LastRenderAt stays nil.
	case err != nil:
		s.logger.ErrorContext(ctx, "Error getting last render time", "guild_id", guildID, "error", err)
		return nil, fmt.Errorf("failed to get last render time for guild %s: %w", guildID, err)
	default:
		stats.LastRenderAt = &last
	}

	s.logger.DebugContext(ctx, "Fetched guild render stats", "guild_id", guildID, "total", stats.Total)
	return stats, nil
}

// DeleteRendersBefore removes audit rows created before the cutoff.
func (s *sqlxStore) DeleteRendersBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if ctx.Err() != nil {
		return 0, ctx.Err()
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM renders WHERE created_at < ?;`, cutoff.UTC())
	if err != nil {
		s.logger.ErrorContext(ctx, "Error pruning render audit rows", "cutoff", cutoff, "error", err)
		return 0, fmt.Errorf("failed to prune renders before %s: %w", cutoff, err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		s.logger.WarnContext(ctx, "Could not get affected row count after prune", "error", err)
		count = 0
	}
	s.logger.InfoContext(ctx, "Pruned render audit rows", "cutoff", cutoff, "count", count)
	return count, nil
}

// RunSQLMaintenance executes a VACUUM command on the SQLite database.
func (s *sqlxStore) RunSQLMaintenance(ctx context.Context) error {
	if ctx.Err() != nil {
		s.logger.WarnContext(ctx, "Context cancelled or timed out before starting VACUUM", "error", ctx.Err())
		return ctx.Err()
	}

	s.logger.InfoContext(ctx, "Starting database maintenance (VACUUM)...")

	// VACUUM must run outside a transaction in SQLite.
	_, err := s.db.ExecContext(ctx, "VACUUM;")
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		s.logger.WarnContext(ctx, "VACUUM operation timed out or was cancelled", "error", err)
		return fmt.Errorf("database maintenance (VACUUM) timed out: %w", err)

	case err != nil:
		s.logger.ErrorContext(ctx, "Database maintenance (VACUUM) failed", "error", err)
		return fmt.Errorf("failed to execute VACUUM: %w", err)

	default:
		s.logger.InfoContext(ctx, "Database maintenance (VACUUM) completed successfully")
	}

	return nil
}
