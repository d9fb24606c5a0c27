package emoji

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

func fixturePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 72, 72))
	for y := 0; y < 72; y++ {
		for x := 0; x < 72; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode fixture png: %v", err)
	}
	return buf.Bytes()
}

func TestKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "single codepoint", input: "\U0001f600", want: "1f600"},
		{name: "ascii", input: "a", want: "61"},
		{name: "joined sequence", input: "\U0001f468‍\U0001f4bb", want: "1f468-200d-1f4bb"},
		{name: "flag pair", input: "\U0001f1fa\U0001f1f8", want: "1f1fa-1f1f8"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Key(tt.input); got != tt.want {
				t.Errorf("Key(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsEmoji(t *testing.T) {
	t.Parallel()

	cache, err := NewCache(nil, t.TempDir(), "", nil)
	if err != nil {
		t.Fatalf("NewCache returned error: %v", err)
	}

	tests := []struct {
		name  string
		input rune
		want  bool
	}{
		{name: "grinning face", input: '\U0001f600', want: true},
		{name: "thumbs up", input: '\U0001f44d', want: true},
		{name: "latin letter", input: 'a', want: false},
		{name: "digit", input: '7', want: false},
		{name: "cjk", input: '語', want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := cache.IsEmoji(tt.input); got != tt.want {
				t.Errorf("IsEmoji(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveFetchesOncePerKey(t *testing.T) {
	t.Parallel()

	fixture := fixturePNG(t)
	var fetches atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches.Add(1)
		w.Header().Set("Content-Type", "image/png")
		w.Write(fixture)
	}))
	defer srv.Close()

	dir := t.TempDir()
	cache, err := NewCache(nil, dir, srv.URL, srv.Client())
	if err != nil {
		t.Fatalf("NewCache returned error: %v", err)
	}

	grapheme := "\U0001f600"
	for i := 0; i < 3; i++ {
		img, ok := cache.Resolve(grapheme)
		if !ok {
			t.Fatalf("Resolve attempt %d reported a miss", i+1)
		}
		if b := img.Bounds(); b.Dx() != 72 || b.Dy() != 72 {
			t.Fatalf("Resolve attempt %d returned %dx%d image, want 72x72", i+1, b.Dx(), b.Dy())
		}
	}
	if got := fetches.Load(); got != 1 {
		t.Errorf("remote fetched %d times, want 1", got)
	}

	cached := filepath.Join(dir, Key(grapheme)+".png")
	data, err := os.ReadFile(cached)
	if err != nil {
		t.Fatalf("cache file missing after resolve: %v", err)
	}
	if !bytes.Equal(data, fixture) {
		t.Errorf("cache file holds %d bytes, want the %d fetched bytes", len(data), len(fixture))
	}
}

func TestResolveMissDoesNotPopulateCache(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	dir := t.TempDir()
	cache, err := NewCache(nil, dir, srv.URL, srv.Client())
	if err != nil {
		t.Fatalf("NewCache returned error: %v", err)
	}

	if _, ok := cache.Resolve("\U0001f600"); ok {
		t.Fatal("Resolve reported a hit for a missing asset")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to list cache dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("cache dir has %d entries after a miss, want 0", len(entries))
	}
}

func TestResolveSkipsFetchForUndecodableAsset(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not a png"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	cache, err := NewCache(nil, dir, srv.URL, srv.Client())
	if err != nil {
		t.Fatalf("NewCache returned error: %v", err)
	}

	if _, ok := cache.Resolve("\U0001f600"); ok {
		t.Fatal("Resolve reported a hit for an undecodable asset")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to list cache dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("undecodable asset was written to the cache: %d entries", len(entries))
	}
}

func TestResolveUsesExistingCacheFile(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("remote fetched despite a populated cache")
		http.NotFound(w, r)
	}))
	defer srv.Close()

	dir := t.TempDir()
	grapheme := "\U0001f600"
	if err := os.WriteFile(filepath.Join(dir, Key(grapheme)+".png"), fixturePNG(t), 0o644); err != nil {
		t.Fatalf("failed to seed cache file: %v", err)
	}

	cache, err := NewCache(nil, dir, srv.URL, srv.Client())
	if err != nil {
		t.Fatalf("NewCache returned error: %v", err)
	}
	if _, ok := cache.Resolve(grapheme); !ok {
		t.Fatal("Resolve missed a seeded cache entry")
	}
}
