package render

import "image/color"

// Mode selects which palette a screenshot is rendered with.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// ParseMode normalizes a stored mode string. Anything other than "dark"
// renders light, matching the config-load fallback.
func ParseMode(s string) Mode {
	if s == string(ModeDark) {
		return ModeDark
	}
	return ModeLight
}

// Palette holds the background and default text color for one mode.
type Palette struct {
	Background color.RGBA
	Text       color.RGBA
}

var (
	paletteDark = Palette{
		Background: color.RGBA{R: 54, G: 57, B: 63, A: 255},
		Text:       color.RGBA{R: 220, G: 221, B: 222, A: 255},
	}
	paletteLight = Palette{
		Background: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Text:       color.RGBA{R: 0, G: 0, B: 0, A: 255},
	}
)

// PaletteFor returns the palette for a mode by value; callers cannot
// mutate the shared tables.
func PaletteFor(m Mode) Palette {
	if m == ModeDark {
		return paletteDark
	}
	return paletteLight
}

// Fixed accent colors shared by both palettes.
var (
	mentionColor        = color.RGBA{R: 88, G: 101, B: 242, A: 255}
	broadcastColor      = color.RGBA{R: 250, G: 166, B: 26, A: 255}
	timestampColor      = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	authorFallbackColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)
