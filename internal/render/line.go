package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// EmojiSource resolves an emoji character to a bitmap. A false return
// from Resolve means the character is drawn as regular glyph text.
type EmojiSource interface {
	IsEmoji(r rune) bool
	Resolve(grapheme string) (image.Image, bool)
}

// canvas is the request-local drawing state for a single render. It is
// never shared between renders.
type canvas struct {
	img      *image.RGBA
	emoji    EmojiSource
	resolver MentionResolver
}

// isNoDrawRune reports characters that occupy no visual cell: carriage
// returns, the zero-width joiner, and variation selectors.
func isNoDrawRune(r rune) bool {
	return r == '\r' || r == 0x200d || (r >= 0xfe00 && r <= 0xfe0f)
}

func stripNoDraw(s string) string {
	if !strings.ContainsFunc(s, isNoDrawRune) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !isNoDrawRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// measure returns the advance width of s for face, ignoring characters
// that draw nothing.
func measure(face font.Face, s string) fixed.Int26_6 {
	return font.MeasureString(face, stripNoDraw(s))
}

// drawLine renders one wrapped line with its top edge at y and returns
// the y of the next line.
func (c *canvas) drawLine(line string, x, y int, face font.Face, size int, textColor color.RGBA) int {
	pen := fixed.I(x)
	for _, seg := range splitSegments(line) {
		pen = c.drawSegment(seg, pen, y, face, size, textColor)
	}
	return y + size + lineLeading
}

func (c *canvas) drawSegment(seg segment, pen fixed.Int26_6, y int, face font.Face, size int, textColor color.RGBA) fixed.Int26_6 {
	switch seg.kind {
	case segRole:
		label := "@" + seg.name
		col := mentionColor
		if c.resolver != nil {
			if role, ok := c.resolver.ResolveRole(seg.id); ok && role.HasColor {
				col = role.Color
			}
		}
		c.drawString(label, pen, y, face, col)
		return pen + measure(face, label)
	case segUser:
		label := "@" + seg.name
		c.drawString(label, pen, y, face, mentionColor)
		return pen + measure(face, label)
	case segEveryone:
		c.drawString("@everyone", pen, y, face, broadcastColor)
		return pen + measure(face, "@everyone")
	case segHere:
		c.drawString("@here", pen, y, face, broadcastColor)
		return pen + measure(face, "@here")
	default:
		return c.drawText(seg.raw, pen, y, face, size, textColor)
	}
}

// drawText renders a plain text run character by character so emoji can
// be replaced inline with their bitmaps, sized to the font.
func (c *canvas) drawText(text string, pen fixed.Int26_6, y int, face font.Face, size int, textColor color.RGBA) fixed.Int26_6 {
	for _, r := range text {
		if isNoDrawRune(r) {
			continue
		}
		if c.emoji != nil && c.emoji.IsEmoji(r) {
			if bitmap, ok := c.emoji.Resolve(string(r)); ok {
				c.pasteEmoji(bitmap, pen.Floor(), y, size)
				pen += fixed.I(size)
				continue
			}
		}
		ch := string(r)
		c.drawString(ch, pen, y, face, textColor)
		pen += measure(face, ch)
	}
	return pen
}

func (c *canvas) drawString(s string, pen fixed.Int26_6, y int, face font.Face, col color.RGBA) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: pen, Y: fixed.I(y) + face.Metrics().Ascent},
	}
	d.DrawString(s)
}

func (c *canvas) pasteEmoji(bitmap image.Image, x, y, size int) {
	scaled := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), bitmap, bitmap.Bounds(), xdraw.Src, nil)
	draw.Draw(c.img, image.Rect(x, y, x+size, y+size), scaled, image.Point{}, draw.Over)
}
