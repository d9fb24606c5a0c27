// Package config loads and validates the bot configuration from a YAML
// file, SSBOT_* environment variables, and built-in defaults.
package config

import "time"

// Config is the root application configuration. Treat a loaded Config as
// immutable; nothing mutates it after LoadConfig returns.
type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger"`
	Discord   DiscordConfig   `mapstructure:"discord"`
	Render    RenderConfig    `mapstructure:"render"`
	Emoji     EmojiConfig     `mapstructure:"emoji"`
	Guilds    GuildsConfig    `mapstructure:"guilds"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// LoggerConfig controls log verbosity and output encoding.
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// DiscordConfig holds gateway credentials and command settings.
type DiscordConfig struct {
	Token       string `mapstructure:"token" validate:"required"`
	AdminUserID string `mapstructure:"admin_user_id"`
	Trigger     string `mapstructure:"trigger" validate:"required"`
}

// RenderConfig controls screenshot generation and artifact handling.
type RenderConfig struct {
	OutputDir      string        `mapstructure:"output_dir" validate:"required"`
	FontRegular    string        `mapstructure:"font_regular"`
	FontBold       string        `mapstructure:"font_bold"`
	FontItalic     string        `mapstructure:"font_italic"`
	WordLimit      int           `mapstructure:"word_limit" validate:"gt=0"`
	CharLimit      int           `mapstructure:"char_limit" validate:"gt=0"`
	FetchTimeout   time.Duration `mapstructure:"fetch_timeout" validate:"min=1s,max=5m"`
	ArtifactMaxAge time.Duration `mapstructure:"artifact_max_age" validate:"min=1m"`
}

// EmojiConfig controls the twemoji bitmap cache.
type EmojiConfig struct {
	CacheDir string `mapstructure:"cache_dir" validate:"required"`
	BaseURL  string `mapstructure:"base_url" validate:"required,url"`
}

// GuildsConfig locates the per-guild settings file.
type GuildsConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// DatabaseConfig locates the render audit database and sets how long
// audit rows are kept.
type DatabaseConfig struct {
	Path           string        `mapstructure:"path" validate:"required"`
	AuditRetention time.Duration `mapstructure:"audit_retention" validate:"min=1h"`
}

// TaskConfig enables one scheduled task and sets its cron expression.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

// SchedulerConfig maps task names to their schedules.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks"`
}
