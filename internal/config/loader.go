package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// LoadConfig reads configuration from the YAML file at path, layers
// SSBOT_* environment variables on top, and validates the result. A
// missing config file is not an error; defaults and environment apply.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("SSBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", DefaultLogLevel)
	v.SetDefault("logger.json", DefaultLogJSON)

	v.SetDefault("discord.token", "")
	v.SetDefault("discord.admin_user_id", "")
	v.SetDefault("discord.trigger", DefaultTrigger)

	v.SetDefault("render.output_dir", DefaultOutputDir)
	v.SetDefault("render.font_regular", DefaultFontRegular)
	v.SetDefault("render.font_bold", DefaultFontBold)
	v.SetDefault("render.font_italic", DefaultFontItalic)
	v.SetDefault("render.word_limit", DefaultWordLimit)
	v.SetDefault("render.char_limit", DefaultCharLimit)
	v.SetDefault("render.fetch_timeout", DefaultFetchTimeout)
	v.SetDefault("render.artifact_max_age", DefaultArtifactMaxAge)

	v.SetDefault("emoji.cache_dir", DefaultEmojiCacheDir)
	v.SetDefault("emoji.base_url", DefaultEmojiBaseURL)

	v.SetDefault("guilds.path", DefaultGuildsPath)

	v.SetDefault("database.path", DefaultDatabasePath)
	v.SetDefault("database.audit_retention", DefaultAuditRetention)

	v.SetDefault("scheduler.tasks.artifact_sweep.enabled", true)
	v.SetDefault("scheduler.tasks.artifact_sweep.schedule", DefaultSweepSchedule)
	v.SetDefault("scheduler.tasks.audit_prune.enabled", true)
	v.SetDefault("scheduler.tasks.audit_prune.schedule", DefaultPruneSchedule)
	v.SetDefault("scheduler.tasks.sql_maintenance.enabled", true)
	v.SetDefault("scheduler.tasks.sql_maintenance.schedule", DefaultMaintenanceSchedule)
}
