// Package handlers contains the Discord command and message handlers for
// the screenshot bot, along with their registration logic and middleware.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/voidxprt/screenshotbotv1-discord/internal/database"
	"github.com/voidxprt/screenshotbotv1-discord/internal/discord"
	"github.com/voidxprt/screenshotbotv1-discord/internal/render"
)

const dbSaveTimeout = 5 * time.Second

type screenshotHandler struct {
	deps HandlerDeps
}

// NewScreenshotHandler creates the gateway handler for the screenshot
// command: reply to a message with the trigger and the bot posts a
// rendered image of the replied-to message.
func NewScreenshotHandler(deps HandlerDeps) func(s *discordgo.Session, m *discordgo.MessageCreate) {
	return screenshotHandler{deps}.Handle
}

func (h screenshotHandler) Handle(s *discordgo.Session, m *discordgo.MessageCreate) {
	deps := h.deps
	log := deps.Logger.With("handler", "screenshot")

	if m.Author == nil || m.Author.Bot {
		return
	}
	if !isTrigger(m.Content, deps.Config.Discord.Trigger) {
		return
	}
	if m.GuildID == "" {
		// The command only makes sense inside a guild channel.
		return
	}

	log.Info("Handling screenshot command",
		"guild_id", m.GuildID, "channel_id", m.ChannelID, "user_id", m.Author.ID)

	// The invoking command message disappears either way.
	if err := s.ChannelMessageDelete(m.ChannelID, m.ID); err != nil {
		log.Debug("Failed to delete command message", "message_id", m.ID, "error", err)
	}

	target := h.resolveTarget(s, m)
	if err := ValidateTarget(target, deps.Config.Render.WordLimit, deps.Config.Render.CharLimit); err != nil {
		sendTransientNotice(s, log, m.ChannelID, h.noticeFor(err))
		return
	}

	mode := render.ParseMode(deps.Guilds.Mode(m.GuildID))
	resolver := discord.NewGuildResolver(s, m.GuildID)
	roleMentions, userMentions := discord.MessageMentions(target, resolver)

	req := render.Request{
		AuthorName:     discord.DisplayNameOf(target.Author, resolver),
		AvatarURL:      discord.AvatarURL(s, m.GuildID, target.Author),
		Body:           render.Tokenize(target.Content, roleMentions, userMentions),
		TimestampLabel: target.Timestamp.UTC().Format("3:04 PM"),
		Mode:           mode,
		RoleColor:      discord.TopRoleColor(s, m.GuildID, target.Author.ID),
		Resolver:       resolver,
	}

	path, err := deps.Renderer.RenderFile(req)
	if err != nil {
		log.Error("Failed to render screenshot", "error", err)
		sendTransientNotice(s, log, m.ChannelID, "❌ Could not generate the screenshot. Please try again later.")
		return
	}
	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Warn("Failed to remove screenshot artifact", "path", path, "error", err)
		}
	}()

	width, height, err := h.sendScreenshot(s, m, path)
	if err != nil {
		log.Error("Failed to send screenshot", "path", path, "error", err)
		return
	}

	h.recordRender(m, target, string(mode), width, height)
}

// resolveTarget returns the replied-to message, fetching it when the
// gateway event did not carry the resolved reference.
func (h screenshotHandler) resolveTarget(s *discordgo.Session, m *discordgo.MessageCreate) *discordgo.Message {
	if m.ReferencedMessage != nil {
		return m.ReferencedMessage
	}
	ref := m.MessageReference
	if ref == nil || ref.MessageID == "" {
		return nil
	}
	channelID := ref.ChannelID
	if channelID == "" {
		channelID = m.ChannelID
	}
	msg, err := s.ChannelMessage(channelID, ref.MessageID)
	if err != nil {
		h.deps.Logger.Debug("Failed to fetch reply target", "message_id", ref.MessageID, "error", err)
		return nil
	}
	return msg
}

// sendScreenshot uploads the rendered file and returns its pixel
// dimensions for the audit log.
func (h screenshotHandler) sendScreenshot(s *discordgo.Session, m *discordgo.MessageCreate, path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open screenshot artifact: %w", err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read screenshot dimensions: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return 0, 0, fmt.Errorf("failed to rewind screenshot artifact: %w", err)
	}

	_, err = s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Content: fmt.Sprintf("📸 Screenshot generated by %s", m.Author.Mention()),
		Files: []*discordgo.File{{
			Name:        filepath.Base(path),
			ContentType: "image/png",
			Reader:      f,
		}},
	})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to upload screenshot: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// recordRender writes the audit row. Audit failures never surface to the
// channel; the screenshot was already delivered.
func (h screenshotHandler) recordRender(m *discordgo.MessageCreate, target *discordgo.Message, mode string, width, height int) {
	ctx, cancel := context.WithTimeout(context.Background(), dbSaveTimeout)
	defer cancel()

	record := &database.Render{
		GuildID:     m.GuildID,
		ChannelID:   m.ChannelID,
		MessageID:   target.ID,
		RequesterID: m.Author.ID,
		AuthorID:    target.Author.ID,
		Mode:        mode,
		Width:       width,
		Height:      height,
	}
	if err := h.deps.Store.RecordRender(ctx, record); err != nil {
		h.deps.Logger.WarnContext(ctx, "Failed to record render audit row",
			"guild_id", m.GuildID, "message_id", target.ID, "error", err)
	}
}

func (h screenshotHandler) noticeFor(err error) string {
	switch {
	case errors.Is(err, ErrNoTarget):
		return "❌ You must reply to a message to screenshot it."
	case errors.Is(err, ErrBotAuthor):
		return "😏 Nice try, but you can’t screenshot bot messages."
	case errors.Is(err, ErrTooManyWords):
		return fmt.Sprintf("⚠️ Message too long (limit: %d words).", h.deps.Config.Render.WordLimit)
	case errors.Is(err, ErrTooManyChars):
		return fmt.Sprintf("⚠️ Message too long (limit: %d characters).", h.deps.Config.Render.CharLimit)
	}
	return "❌ Could not generate the screenshot. Please try again later."
}
