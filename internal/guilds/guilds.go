// Package guilds persists each guild's screenshot display mode in a
// small JSON file. The file is reloaded on every lookup, so edits made
// while the bot is running take effect immediately.
package guilds

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// Display modes stored per guild.
const (
	ModeLight = "light"
	ModeDark  = "dark"
)

// Settings is the stored per-guild record.
type Settings struct {
	Mode string `json:"mode"`
}

// Store reads and writes the per-guild settings file. Lookups load the
// file fresh; writes replace it whole. Safe for concurrent handlers.
type Store struct {
	logger *slog.Logger
	path   string
	mu     sync.Mutex
}

// NewStore returns a store backed by the JSON file at path. A missing
// file behaves as an empty store until the first write.
func NewStore(logger *slog.Logger, path string) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		logger: logger.With("component", "guild_store"),
		path:   path,
	}
}

// Mode returns the stored display mode for a guild. Unknown guilds and
// unreadable files fall back to light.
func (s *Store) Mode(guildID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.load()[guildID]; ok && entry.Mode != "" {
		return entry.Mode
	}
	return ModeLight
}

// SetMode stores the display mode for a guild, preserving every other
// guild's entry.
func (s *Store) SetMode(guildID, mode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.load()
	cfg[guildID] = Settings{Mode: mode}
	return s.save(cfg)
}

// load parses the settings file. Early versions stored a bare mode string
// per guild; those entries are normalized to the current shape.
func (s *Store) load() map[string]Settings {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("Failed to read guild settings file", "path", s.path, "error", err)
		}
		return map[string]Settings{}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Warn("Guild settings file is malformed, treating as empty", "path", s.path, "error", err)
		return map[string]Settings{}
	}

	cfg := make(map[string]Settings, len(raw))
	for id, v := range raw {
		var entry Settings
		if err := json.Unmarshal(v, &entry); err == nil {
			cfg[id] = entry
			continue
		}
		var legacy string
		if err := json.Unmarshal(v, &legacy); err == nil {
			cfg[id] = Settings{Mode: legacy}
			continue
		}
		s.logger.Warn("Skipping unrecognized guild settings entry", "guild_id", id)
	}
	return cfg
}

func (s *Store) save(cfg map[string]Settings) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode guild settings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write guild settings: %w", err)
	}
	return nil
}
