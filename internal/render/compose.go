// Package render draws chat message screenshots: a rounded avatar, the
// author line, a timestamp, and the word-wrapped message body with
// mention and emoji substitution, cropped to content height.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/webp"
)

// Canvas geometry. The text column starts right of the avatar and wraps
// within a fixed width; the finished image is cropped to content height.
const (
	canvasWidth  = 800
	avatarSize   = 64
	avatarX      = 20
	avatarY      = 20
	textX        = 100
	authorY      = 20
	timestampY   = 50
	bodyY        = 90
	bodyMaxWidth = 680

	authorSize    = 24
	timestampSize = 18
	bodySize      = 22
	lineLeading   = 6

	bottomMargin = 20
	minHeight    = 400
)

// Engine renders message screenshots. It is safe for concurrent use:
// each call checks its faces out of the font pools and keeps all other
// drawing state local.
type Engine struct {
	logger *slog.Logger
	fonts  *FontSet
	emoji  EmojiSource
	client *http.Client
	outDir string
}

// NewEngine creates a render engine writing artifacts to outDir. The
// client is used for avatar fetches and should carry a short timeout.
func NewEngine(logger *slog.Logger, fonts *FontSet, emoji EmojiSource, client *http.Client, outDir string) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if client == nil {
		client = http.DefaultClient
	}
	if outDir == "" {
		outDir = "."
	}
	return &Engine{
		logger: logger.With("component", "render"),
		fonts:  fonts,
		emoji:  emoji,
		client: client,
		outDir: outDir,
	}
}

// Request carries everything needed to render one screenshot. Body must
// already be tokenized (see Tokenize). TimestampLabel is the preformatted
// clock string drawn under the author name. A nil RoleColor draws the
// author name in the fallback color.
type Request struct {
	AuthorName     string
	AvatarURL      string
	Body           string
	TimestampLabel string
	Mode           Mode
	RoleColor      *color.RGBA
	Resolver       MentionResolver
}

// Render draws the screenshot and returns the cropped image. Drawing
// never hard-fails: avatar and emoji fetch problems degrade to omitting
// the avatar or drawing the character as text.
func (e *Engine) Render(req Request) *image.RGBA {
	pal := PaletteFor(req.Mode)

	// Faces hold rasterizer state, so each render checks its own out of
	// the pool for the duration of the call.
	bodyFace := e.fonts.Face(StyleRegular, bodySize)
	defer e.fonts.Release(StyleRegular, bodySize, bodyFace)
	authorFace := e.fonts.Face(StyleBold, authorSize)
	defer e.fonts.Release(StyleBold, authorSize, authorFace)
	timestampFace := e.fonts.Face(StyleRegular, timestampSize)
	defer e.fonts.Release(StyleRegular, timestampSize, timestampFace)

	lines := wrapLines(req.Body, bodyMaxWidth, bodyFace)

	// Allocate enough for every wrapped line, then crop to content.
	height := bodyY + len(lines)*(bodySize+lineLeading) + bottomMargin
	if height < minHeight {
		height = minHeight
	}
	img := image.NewRGBA(image.Rect(0, 0, canvasWidth, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(pal.Background), image.Point{}, draw.Src)

	c := &canvas{img: img, emoji: e.emoji, resolver: req.Resolver}

	if req.AvatarURL != "" {
		if avatar, ok := e.fetchImage(req.AvatarURL); ok {
			rounded := roundAvatar(avatar, avatarSize)
			draw.Draw(img, image.Rect(avatarX, avatarY, avatarX+avatarSize, avatarY+avatarSize), rounded, image.Point{}, draw.Over)
		}
	}

	authorColor := authorFallbackColor
	if req.RoleColor != nil {
		authorColor = *req.RoleColor
	}
	c.drawString(req.AuthorName, fixed.I(textX), authorY, authorFace, authorColor)
	c.drawString(req.TimestampLabel, fixed.I(textX), timestampY, timestampFace, timestampColor)

	finalY := bodyY
	for _, line := range lines {
		finalY = c.drawLine(line, textX, finalY, bodyFace, bodySize, pal.Text)
	}

	return cropToHeight(img, finalY+bottomMargin)
}

// RenderFile renders the screenshot and writes it to a uniquely named PNG
// in the engine's output directory, returning the file path. The caller
// owns deletion of the artifact.
func (e *Engine) RenderFile(req Request) (string, error) {
	img := e.Render(req)

	name := fmt.Sprintf("screenshot_%s.png", strings.ReplaceAll(uuid.New().String(), "-", ""))
	path := filepath.Join(e.outDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create screenshot file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to encode screenshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close screenshot file: %w", err)
	}

	bounds := img.Bounds()
	e.logger.Debug("Screenshot rendered", "path", path, "width", bounds.Dx(), "height", bounds.Dy())
	return path, nil
}

// fetchImage downloads and decodes a remote image, best effort.
func (e *Engine) fetchImage(url string) (image.Image, bool) {
	resp, err := e.client.Get(url)
	if err != nil {
		e.logger.Warn("Avatar fetch failed", "url", url, "error", err)
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		e.logger.Warn("Avatar fetch returned non-OK status", "url", url, "status", resp.StatusCode)
		return nil, false
	}
	img, _, err := image.Decode(resp.Body)
	if err != nil {
		e.logger.Warn("Avatar decode failed", "url", url, "error", err)
		return nil, false
	}
	return img, true
}

// roundAvatar scales an avatar to a square of the given size and masks it
// to a circle with an antialiased edge.
func roundAvatar(src image.Image, size int) image.Image {
	scaled := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	mask := gg.NewContext(size, size)
	mask.DrawCircle(float64(size)/2, float64(size)/2, float64(size)/2)
	mask.SetColor(color.White)
	mask.Fill()

	out := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.DrawMask(out, out.Bounds(), scaled, image.Point{}, mask.Image(), image.Point{}, draw.Over)
	return out
}

func cropToHeight(img *image.RGBA, height int) *image.RGBA {
	if height > img.Bounds().Dy() {
		height = img.Bounds().Dy()
	}
	out := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), height))
	draw.Draw(out, out.Bounds(), img, image.Point{}, draw.Src)
	return out
}
