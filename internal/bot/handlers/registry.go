package handlers

import (
	"github.com/bwmarrin/discordgo"

	"github.com/voidxprt/screenshotbotv1-discord/internal/discord"
)

// RegisterAllCommands builds the full slash command set keyed by
// command name, ready for registration on the gateway Ready event.
func RegisterAllCommands(deps HandlerDeps) map[string]discord.SlashCommand {
	return map[string]discord.SlashCommand{
		"setup": {
			Command: &discordgo.ApplicationCommand{
				Name:        "setup",
				Description: "Setup screenshot mode for this server",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "mode",
						Description: "Choose light or dark mode",
						Required:    true,
						Choices: []*discordgo.ApplicationCommandOptionChoice{
							{Name: "Light Mode", Value: "light"},
							{Name: "Dark Mode", Value: "dark"},
						},
					},
				},
			},
			Handler: newSetupHandler(deps),
		},
		"lightmode": {
			Command: &discordgo.ApplicationCommand{
				Name:        "lightmode",
				Description: "Switch screenshots to light mode",
			},
			Handler: newLightModeHandler(deps),
		},
		"darkmode": {
			Command: &discordgo.ApplicationCommand{
				Name:        "darkmode",
				Description: "Switch screenshots to dark mode",
			},
			Handler: newDarkModeHandler(deps),
		},
		"ssstats": {
			Command: &discordgo.ApplicationCommand{
				Name:        "ssstats",
				Description: "Show screenshot usage for this server (admin only)",
			},
			Handler: AdminOnly(deps, newStatsHandler(deps)),
		},
	}
}
