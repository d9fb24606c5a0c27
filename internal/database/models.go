package database

import "time"

// Render is one audit row for a generated screenshot: where it was
// requested, whose message it captured, and the output geometry.
type Render struct {
	ID        uint      `db:"id"`
	CreatedAt time.Time `db:"created_at"`

	GuildID     string `db:"guild_id"`
	ChannelID   string `db:"channel_id"`
	MessageID   string `db:"message_id"`
	RequesterID string `db:"requester_id"`
	AuthorID    string `db:"author_id"`
	Mode        string `db:"mode"`
	Width       int    `db:"width"`
	Height      int    `db:"height"`
}

// GuildStats aggregates a guild's render history. LastRenderAt is nil
// when the guild has no renders.
type GuildStats struct {
	Total        int64
	Light        int64
	Dark         int64
	LastRenderAt *time.Time
}
