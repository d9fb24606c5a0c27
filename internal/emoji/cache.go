// Package emoji resolves emoji characters to bitmaps through a disk
// cache keyed by codepoint sequence, backed by the public twemoji asset
// tree on a miss.
package emoji

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/forPelevin/gomoji"
)

// DefaultBaseURL is the 72x72 twemoji asset tree fetched on cache misses.
const DefaultBaseURL = "https://raw.githubusercontent.com/twitter/twemoji/master/assets/72x72"

const defaultFetchTimeout = 8 * time.Second

// Cache is a disk-backed emoji bitmap cache. Entries are written once and
// never evicted; concurrent fetches of the same key may race, but both
// write identical bytes so the race is harmless.
type Cache struct {
	logger  *slog.Logger
	dir     string
	baseURL string
	client  *http.Client
}

// NewCache creates the cache directory if needed and returns a cache
// fetching from baseURL (DefaultBaseURL when empty).
func NewCache(logger *slog.Logger, dir, baseURL string, client *http.Client) (*Cache, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create emoji cache dir: %w", err)
	}
	return &Cache{
		logger:  logger.With("component", "emoji_cache"),
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}, nil
}

// Key builds the cache and asset key for a grapheme: the lowercase hex
// code points of its characters joined by hyphens.
func Key(grapheme string) string {
	parts := make([]string, 0, len(grapheme))
	for _, r := range grapheme {
		parts = append(parts, fmt.Sprintf("%x", r))
	}
	return strings.Join(parts, "-")
}

// IsEmoji reports whether the rune is a recognized emoji character.
func (c *Cache) IsEmoji(r rune) bool {
	return gomoji.ContainsEmoji(string(r))
}

// Resolve returns the bitmap for an emoji grapheme, reading the local
// cache first and falling back to a remote fetch that populates it. A
// false return means the caller should draw the character as plain text.
func (c *Cache) Resolve(grapheme string) (image.Image, bool) {
	key := Key(grapheme)
	if key == "" {
		return nil, false
	}
	path := filepath.Join(c.dir, key+".png")

	if data, err := os.ReadFile(path); err == nil {
		img, err := png.Decode(bytes.NewReader(data))
		if err == nil {
			return img, true
		}
		c.logger.Warn("Cached emoji file does not decode, refetching", "key", key, "error", err)
	}

	data, ok := c.fetch(key)
	if !ok {
		return nil, false
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		c.logger.Warn("Fetched emoji asset does not decode", "key", key, "error", err)
		return nil, false
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		c.logger.Warn("Failed to write emoji cache file", "key", key, "error", err)
	}
	return img, true
}

func (c *Cache) fetch(key string) ([]byte, bool) {
	url := c.baseURL + "/" + key + ".png"
	resp, err := c.client.Get(url)
	if err != nil {
		c.logger.Debug("Emoji fetch failed", "url", url, "error", err)
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("Emoji fetch returned non-OK status", "url", url, "status", resp.StatusCode)
		return nil, false
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Debug("Emoji fetch read failed", "url", url, "error", err)
		return nil, false
	}
	return data, true
}
