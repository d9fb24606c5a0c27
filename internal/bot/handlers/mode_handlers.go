package handlers

import (
	"github.com/bwmarrin/discordgo"

	"github.com/voidxprt/screenshotbotv1-discord/internal/guilds"
)

// newLightModeHandler returns the /lightmode shortcut handler.
func newLightModeHandler(deps HandlerDeps) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return newModeShortcutHandler(deps, guilds.ModeLight, "☀️ Switched to **light mode** for screenshots.")
}

// newDarkModeHandler returns the /darkmode shortcut handler.
func newDarkModeHandler(deps HandlerDeps) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return newModeShortcutHandler(deps, guilds.ModeDark, "🌙 Switched to **dark mode** for screenshots.")
}

func newModeShortcutHandler(deps HandlerDeps, mode, confirmation string) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		log := deps.Logger.With("handler", "mode_shortcut", "mode", mode)

		if i.GuildID == "" {
			respondEphemeral(s, i, log, "❌ This command can only be used in a server.")
			return
		}
		if err := deps.Guilds.SetMode(i.GuildID, mode); err != nil {
			log.Error("Failed to save guild mode", "guild_id", i.GuildID, "error", err)
			respondEphemeral(s, i, log, "❌ Failed to save the setting. Please try again.")
			return
		}

		log.Info("Guild mode updated", "guild_id", i.GuildID)
		respondEphemeral(s, i, log, confirmation)
	}
}
