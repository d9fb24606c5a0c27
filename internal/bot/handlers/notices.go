package handlers

import (
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
)

// noticeTTL is how long rejection notices stay visible before the bot
// deletes them.
const noticeTTL = 5 * time.Second

// sendTransientNotice posts a short-lived notice to a channel and
// schedules its deletion.
func sendTransientNotice(s *discordgo.Session, log *slog.Logger, channelID, text string) {
	msg, err := s.ChannelMessageSend(channelID, text)
	if err != nil {
		log.Warn("Failed to send notice", "channel_id", channelID, "error", err)
		return
	}
	time.AfterFunc(noticeTTL, func() {
		if err := s.ChannelMessageDelete(channelID, msg.ID); err != nil {
			log.Debug("Failed to delete notice", "channel_id", channelID, "message_id", msg.ID, "error", err)
		}
	})
}

// respondEphemeral answers an interaction with a message only the
// invoking user can see.
func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, log *slog.Logger, text string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: text,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Warn("Failed to respond to interaction", "error", err)
	}
}
