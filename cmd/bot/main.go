// Package main contains the entrypoint for the screenshot Discord bot.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"github.com/voidxprt/screenshotbotv1-discord/internal/bot"
	"github.com/voidxprt/screenshotbotv1-discord/internal/bot/handlers"
	"github.com/voidxprt/screenshotbotv1-discord/internal/bot/tasks"
	"github.com/voidxprt/screenshotbotv1-discord/internal/config"
	"github.com/voidxprt/screenshotbotv1-discord/internal/database"
	"github.com/voidxprt/screenshotbotv1-discord/internal/discord"
	"github.com/voidxprt/screenshotbotv1-discord/internal/emoji"
	"github.com/voidxprt/screenshotbotv1-discord/internal/guilds"
	"github.com/voidxprt/screenshotbotv1-discord/internal/logger"
	"github.com/voidxprt/screenshotbotv1-discord/internal/render"

	_ "modernc.org/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop() // Ensure context cancellation is signaled before exit
	os.Exit(exitCode)
}

// run initializes and starts all application components (config, logger, db,
// renderer, Discord session, scheduler), handles graceful shutdown, and
// returns an exit code (0 for success, 1 for failure).
func run(ctx context.Context) int {
	configPath := flag.String("config", "./config.yaml", "Path to configuration file")
	flag.Parse()

	// Best-effort .env load for local development; existing variables win.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Logger.Level, cfg.Logger.JSON)
	slog.SetDefault(log)
	log.Info("Logger initialized", "level", cfg.Logger.Level, "json", cfg.Logger.JSON)

	// Route discordgo's internal logging through slog.
	discordgo.Logger = logger.Discordgo(log)

	db, err := database.NewDB(cfg.Database.Path)
	if err != nil {
		log.Error("Failed to connect to database", "path", cfg.Database.Path, "error", err)
		return 1
	}
	defer database.CloseDB(db) // Ensure DB is closed on function exit
	store := database.NewStore(db, log)

	if err := os.MkdirAll(cfg.Render.OutputDir, 0o755); err != nil {
		log.Error("Failed to create render output directory", "path", cfg.Render.OutputDir, "error", err)
		return 1
	}

	guildStore := guilds.NewStore(log, cfg.Guilds.Path)

	httpClient := &http.Client{Timeout: cfg.Render.FetchTimeout}

	emojiCache, err := emoji.NewCache(log, cfg.Emoji.CacheDir, cfg.Emoji.BaseURL, httpClient)
	if err != nil {
		log.Error("Failed to initialize emoji cache", "dir", cfg.Emoji.CacheDir, "error", err)
		return 1
	}

	fonts := render.NewFontSet(log, cfg.Render.FontRegular, cfg.Render.FontBold, cfg.Render.FontItalic)
	engine := render.NewEngine(log, fonts, emojiCache, httpClient, cfg.Render.OutputDir)

	session, err := discord.NewSession(cfg.Discord.Token, log)
	if err != nil {
		log.Error("Failed to create Discord session", "error", err)
		return 1
	}

	hDeps := handlers.HandlerDeps{
		Logger:   log,
		Config:   cfg,
		Store:    store,
		Guilds:   guildStore,
		Renderer: engine,
	}
	tDeps := tasks.TaskDeps{
		Logger: log,
		Store:  store,
		Config: cfg,
	}

	messageHandlers := []func(s *discordgo.Session, m *discordgo.MessageCreate){
		logger.MessageLogger(log),
		handlers.NewScreenshotHandler(hDeps),
	}

	if err := discord.RegisterHandlers(session, log, cfg.Discord.Trigger, messageHandlers, handlers.RegisterAllCommands(hDeps)); err != nil {
		log.Error("Failed to register Discord handlers", "error", err)
		return 1
	}

	sched := bot.NewScheduler(log, &cfg.Scheduler, tasks.RegisterAllTasks(tDeps))
	app := bot.NewBot(log, cfg, db, store, session, sched)

	log.Info("Starting bot...")
	runErr := app.Run(ctx) // Run blocks until context is cancelled or an error occurs
	log.Info("Bot run loop finished. Initiating shutdown...")

	// Check if the error is significant (not just context cancellation)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Bot stopped due to error", "error", runErr)
		// Allow logs to flush before exiting on error
		time.Sleep(time.Second)
		return 1
	}

	log.Info("Bot stopped gracefully.")
	// Allow logs to flush before exiting gracefully
	log.Info("Waiting briefly before exit...")
	time.Sleep(time.Second)
	return 0
}
