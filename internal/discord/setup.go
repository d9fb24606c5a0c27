package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// SlashCommand pairs an application command definition with its handler.
type SlashCommand struct {
	Command *discordgo.ApplicationCommand
	Handler func(s *discordgo.Session, i *discordgo.InteractionCreate)
}

// RegisterHandlers attaches the message handlers, the slash command
// dispatcher, and a ready handler that registers the application commands
// and sets the listening presence once the gateway is up.
func RegisterHandlers(
	session *discordgo.Session,
	logger *slog.Logger,
	presence string,
	messageHandlers []func(s *discordgo.Session, m *discordgo.MessageCreate),
	commands map[string]SlashCommand,
) error {
	if session == nil {
		return fmt.Errorf("discord session cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "handler_registry")

	for _, handler := range messageHandlers {
		if handler == nil {
			continue
		}
		session.AddHandler(handler)
	}

	session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}
		name := i.ApplicationCommandData().Name
		cmd, ok := commands[name]
		if !ok || cmd.Handler == nil {
			log.Warn("Received interaction for unknown command", "command", name)
			return
		}
		cmd.Handler(s, i)
	})

	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Info("Discord gateway ready", "bot_user", r.User.Username, "bot_id", r.User.ID)

		if presence != "" {
			if err := s.UpdateListeningStatus(presence); err != nil {
				log.Warn("Failed to set listening presence", "error", err)
			}
		}

		registered := 0
		for name, cmd := range commands {
			if cmd.Command == nil {
				continue
			}
			if _, err := s.ApplicationCommandCreate(r.User.ID, "", cmd.Command); err != nil {
				log.Error("Failed to register application command", "command", name, "error", err)
				continue
			}
			registered++
		}
		log.Info("Registered application commands", "count", registered)
	})

	log.Info("Discord handlers attached",
		"message_handlers", len(messageHandlers), "commands", len(commands))
	return nil
}
