package handlers

import "github.com/bwmarrin/discordgo"

// AdminOnly wraps a slash command handler so only the configured bot
// administrator can run it. With no administrator configured, the
// wrapped command is denied for everyone.
func AdminOnly(deps HandlerDeps, next func(s *discordgo.Session, i *discordgo.InteractionCreate)) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		userID := interactionUserID(i)
		adminID := deps.Config.Discord.AdminUserID

		if adminID == "" || userID == "" || userID != adminID {
			log := deps.Logger.With("middleware", "AdminOnly")
			log.Warn("Unauthorized command attempt",
				"user_id", userID, "command", i.ApplicationCommandData().Name)
			respondEphemeral(s, i, log, "🚫 You are not authorized to use this command.")
			return
		}

		next(s, i)
	}
}

// interactionUserID extracts the invoking user's ID, which arrives on
// Member in guild channels and on User in direct messages.
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
