package handlers

import (
	"log/slog"

	"github.com/voidxprt/screenshotbotv1-discord/internal/config"
	"github.com/voidxprt/screenshotbotv1-discord/internal/database"
	"github.com/voidxprt/screenshotbotv1-discord/internal/guilds"
	"github.com/voidxprt/screenshotbotv1-discord/internal/render"
)

// HandlerDeps provides dependencies for Discord command handlers.
type HandlerDeps struct {
	Logger   *slog.Logger
	Config   *config.Config
	Store    database.Store
	Guilds   *guilds.Store
	Renderer *render.Engine
}
