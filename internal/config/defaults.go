package config

import "time"

// Defaults applied before the config file and environment are read.
const (
	DefaultLogLevel = "info"
	DefaultLogJSON  = false

	DefaultTrigger = "!ss"

	DefaultOutputDir      = "."
	DefaultFontRegular    = "fonts/whitneybook.otf"
	DefaultFontBold       = "fonts/whitneysemibold.otf"
	DefaultFontItalic     = "fonts/whitneybookitalic.otf"
	DefaultWordLimit      = 200
	DefaultCharLimit      = 2000
	DefaultFetchTimeout   = 8 * time.Second
	DefaultArtifactMaxAge = time.Hour

	DefaultEmojiCacheDir = "twemoji"
	DefaultEmojiBaseURL  = "https://raw.githubusercontent.com/twitter/twemoji/master/assets/72x72"

	DefaultGuildsPath = "config.json"

	DefaultDatabasePath   = "screenshots.db"
	DefaultAuditRetention = 90 * 24 * time.Hour

	DefaultSweepSchedule       = "0 */30 * * * *"
	DefaultPruneSchedule       = "0 0 4 * * *"
	DefaultMaintenanceSchedule = "0 0 5 * * 1"
)
