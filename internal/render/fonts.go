package render

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// FontStyle selects one of the typefaces drawn on the canvas.
type FontStyle int

const (
	StyleRegular FontStyle = iota
	StyleBold
	StyleItalic
)

type faceKey struct {
	style FontStyle
	size  int
}

// FontSet parses the configured font files once and hands out fixed-size
// faces from per-size pools. A face carries mutable rasterizer state and
// must never be shared between goroutines, so every caller checks one out
// with Face and gives it back with Release. A font file that is missing
// or unparseable falls back to the bundled Go fonts so rendering always
// proceeds.
type FontSet struct {
	logger *slog.Logger
	fonts  map[FontStyle]*truetype.Font

	mu    sync.Mutex
	pools map[faceKey]*sync.Pool
}

// NewFontSet loads the regular, bold, and italic typefaces from the given
// paths. Empty paths use the bundled fallbacks directly.
func NewFontSet(logger *slog.Logger, regularPath, boldPath, italicPath string) *FontSet {
	if logger == nil {
		logger = slog.Default()
	}
	fs := &FontSet{
		logger: logger.With("component", "fonts"),
		fonts:  make(map[FontStyle]*truetype.Font),
		pools:  make(map[faceKey]*sync.Pool),
	}
	fs.fonts[StyleRegular] = fs.load(regularPath, goregular.TTF)
	fs.fonts[StyleBold] = fs.load(boldPath, gobold.TTF)
	fs.fonts[StyleItalic] = fs.load(italicPath, goitalic.TTF)
	return fs
}

func (fs *FontSet) load(path string, fallback []byte) *truetype.Font {
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			f, perr := truetype.Parse(data)
			if perr == nil {
				return f
			}
			err = perr
		}
		fs.logger.Warn("Falling back to bundled font", "path", path, "error", err)
	}
	f, err := truetype.Parse(fallback)
	if err != nil {
		// The bundled Go fonts always parse.
		panic(fmt.Sprintf("failed to parse bundled font: %v", err))
	}
	return f
}

// Face checks a face for the given style and pixel size out of its pool.
// The caller owns the face until it hands it back with Release; two live
// checkouts never return the same instance.
func (fs *FontSet) Face(style FontStyle, size int) font.Face {
	return fs.pool(style, size).Get().(font.Face)
}

// Release returns a face obtained from Face to its pool.
func (fs *FontSet) Release(style FontStyle, size int, face font.Face) {
	fs.pool(style, size).Put(face)
}

func (fs *FontSet) pool(style FontStyle, size int) *sync.Pool {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	key := faceKey{style: style, size: size}
	if p, ok := fs.pools[key]; ok {
		return p
	}

	f, ok := fs.fonts[style]
	if !ok {
		f = fs.fonts[StyleRegular]
	}
	p := &sync.Pool{
		New: func() any {
			return truetype.NewFace(f, &truetype.Options{
				Size:    float64(size),
				DPI:     72,
				Hinting: font.HintingFull,
			})
		},
	}
	fs.pools[key] = p
	return p
}
