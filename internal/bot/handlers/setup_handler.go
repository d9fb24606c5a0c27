package handlers

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/voidxprt/screenshotbotv1-discord/internal/guilds"
)

// newSetupHandler returns the /setup slash command handler, which stores
// the chosen display mode for the guild.
func newSetupHandler(deps HandlerDeps) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		log := deps.Logger.With("handler", "setup")

		if i.GuildID == "" {
			respondEphemeral(s, i, log, "❌ This command can only be used in a server.")
			return
		}

		mode := guilds.ModeLight
		for _, opt := range i.ApplicationCommandData().Options {
			if opt.Name == "mode" {
				mode = opt.StringValue()
			}
		}
		label := "Light Mode"
		if mode == guilds.ModeDark {
			label = "Dark Mode"
		}

		if err := deps.Guilds.SetMode(i.GuildID, mode); err != nil {
			log.Error("Failed to save guild mode", "guild_id", i.GuildID, "mode", mode, "error", err)
			respondEphemeral(s, i, log, "❌ Failed to save the setting. Please try again.")
			return
		}

		log.Info("Guild mode updated", "guild_id", i.GuildID, "mode", mode)
		respondEphemeral(s, i, log, fmt.Sprintf("✅ Setup complete! Mode set to **%s**.", label))
	}
}
