// Package bot implements the core bot functionality, lifecycle management,
// and component orchestration for the screenshot Discord bot.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"

	"github.com/voidxprt/screenshotbotv1-discord/internal/config"
	"github.com/voidxprt/screenshotbotv1-discord/internal/database"
)

// Bot represents the main bot application and manages its components' lifecycle.
type Bot struct {
	logger    *slog.Logger
	cfg       *config.Config
	db        *sqlx.DB
	store     database.Store
	session   *discordgo.Session
	scheduler *Scheduler
}

// NewBot creates a new instance of the bot with all required dependencies.
// It initializes the bot with a logger, configuration, database, store,
// Discord session, and scheduler for managing scheduled tasks.
func NewBot(
	logger *slog.Logger,
	cfg *config.Config,
	db *sqlx.DB,
	store database.Store,
	session *discordgo.Session,
	scheduler *Scheduler,
) *Bot {
	return &Bot{
		logger:    logger.With("component", "bot_orchestrator"),
		cfg:       cfg,
		db:        db,
		store:     store,
		session:   session,
		scheduler: scheduler,
	}
}

// Run starts the bot and all its components, handling graceful shutdown on
// context cancellation. It returns an error if any component fails during
// startup or execution.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("Starting bot orchestrator...")

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		b.logger.Info("Opening Discord gateway connection...")

		// Open returns once the websocket handshake completes; the gateway
		// runs on the session's own goroutines until Close.
		if err := b.session.Open(); err != nil {
			b.logger.Error("Failed to open Discord gateway connection", "error", err)

			return fmt.Errorf("failed to open discord session: %w", err)
		}

		<-gCtx.Done()
		b.logger.Info("Shutdown signal received, closing Discord gateway connection...")

		if err := b.session.Close(); err != nil {
			b.logger.Error("Error closing Discord gateway connection", "error", err)
		}

		return nil
	})

	g.Go(func() error {
		b.logger.Info("Starting scheduler...")

		if err := b.scheduler.Start(); err != nil {
			b.logger.Error("Failed to start scheduler", "error", err)

			return fmt.Errorf("failed to start scheduler: %w", err)
		}

		<-gCtx.Done()
		b.logger.Info("Shutdown signal received, stopping scheduler...")

		if err := b.scheduler.Stop(); err != nil {
			b.logger.Error("Error stopping scheduler", "error", err)
		}

		return nil
	})

	b.logger.Info("Bot orchestrator running. Waiting for shutdown signal or error...")
	err := g.Wait()

	if err != nil && !errors.Is(err, context.Canceled) {
		b.logger.Error("Bot orchestrator stopped due to error", "error", err)

		return err
	}

	b.logger.Info("Bot orchestrator stopped gracefully.")

	return nil
}
