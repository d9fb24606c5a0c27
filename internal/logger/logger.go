// Package logger provides structured logging for the screenshot bot. It
// uses Go's slog package with configurable levels and formats, plus
// bridges that route Discord gateway traffic through the same stream.
package logger

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/bwmarrin/discordgo"
)

// NewLogger creates a new slog Logger with the specified level and format.
// If jsonOutput is true, logs will be formatted as JSON, otherwise as text.
func NewLogger(levelStr string, jsonOutput bool) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// Discordgo adapts slog to discordgo's package logger hook so library
// diagnostics land in the application log stream. Install it by assigning
// the result to discordgo.Logger.
func Discordgo(log *slog.Logger) func(msgL, caller int, format string, a ...interface{}) {
	dlog := log.With("component", "discordgo")
	return func(msgL, caller int, format string, a ...interface{}) {
		msg := fmt.Sprintf(format, a...)
		switch msgL {
		case discordgo.LogError:
			dlog.Error(msg)
		case discordgo.LogWarning:
			dlog.Warn(msg)
		case discordgo.LogInformational:
			dlog.Info(msg)
		default:
			dlog.Debug(msg)
		}
	}
}

// MessageLogger returns a gateway handler that records incoming guild
// messages for debugging. Message bodies are truncated to a short
// preview.
func MessageLogger(log *slog.Logger) func(s *discordgo.Session, m *discordgo.MessageCreate) {
	mlog := log.With("component", "gateway")
	return func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil {
			return
		}
		mlog.Debug("Message received",
			"guild_id", m.GuildID,
			"channel_id", m.ChannelID,
			"message_id", m.ID,
			"user_id", m.Author.ID,
			"text_preview", truncateString(m.Content, 50),
		)
	}
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return "..."
	}
	return s[:maxLen-3] + "..."
}
