package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

const statsQueryTimeout = 5 * time.Second

// newStatsHandler returns the /ssstats slash command handler, reporting
// the guild's render history from the audit log.
func newStatsHandler(deps HandlerDeps) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		log := deps.Logger.With("handler", "stats")

		if i.GuildID == "" {
			respondEphemeral(s, i, log, "❌ This command can only be used in a server.")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), statsQueryTimeout)
		defer cancel()

		stats, err := deps.Store.GetGuildStats(ctx, i.GuildID)
		if err != nil {
			log.ErrorContext(ctx, "Failed to load guild render stats", "guild_id", i.GuildID, "error", err)
			respondEphemeral(s, i, log, "❌ Could not load render stats. Please try again later.")
			return
		}

		last := "never"
		if stats.LastRenderAt != nil {
			last = stats.LastRenderAt.UTC().Format("2006-01-02 15:04 MST")
		}
		respondEphemeral(s, i, log, fmt.Sprintf(
			"📊 Screenshots rendered here: **%d** (☀️ %d light, 🌙 %d dark). Last render: %s.",
			stats.Total, stats.Light, stats.Dark, last,
		))
	}
}
