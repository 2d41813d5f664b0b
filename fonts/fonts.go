package fonts

import (
	"fmt"
	"math"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
)

type FontName string

const (
	Mono      FontName = "mono"
	MonoBold  FontName = "mono-bold"
	MonoTitle FontName = "mono-title"
	MonoSmall FontName = "mono-small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 14)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// LoadDefaults registers the HUD faces, all cut from Go Mono.
func LoadDefaults() error {
	loads := []struct {
		name FontName
		ttf  []byte
		size float64
	}{
		{Mono, gomono.TTF, 14},
		{MonoBold, gomonobold.TTF, 18},
		{MonoTitle, gomonobold.TTF, 32},
		{MonoSmall, gomono.TTF, 11},
	}
	for _, l := range loads {
		if err := LoadFontWithSize(l.name, l.ttf, l.size); err != nil {
			return err
		}
	}
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

type faceKey struct {
	halfPx int
	bold   bool
}

// Faces hands out Go Mono faces at arbitrary pixel sizes. Sizes are
// snapped to half pixels so the animated text sizes reuse a bounded set of
// faces.
type Faces struct {
	regular *truetype.Font
	bold    *truetype.Font

	mu    sync.Mutex
	cache map[faceKey]font.Face
}

// NewFaces parses the embedded Go Mono regular and bold fonts.
func NewFaces() (*Faces, error) {
	regular, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse go mono: %w", err)
	}
	bold, err := truetype.Parse(gomonobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse go mono bold: %w", err)
	}
	return &Faces{
		regular: regular,
		bold:    bold,
		cache:   map[faceKey]font.Face{},
	}, nil
}

// Face returns the face for size pixels, creating it on first use.
func (f *Faces) Face(size float64, bold bool) font.Face {
	if size <= 0 || math.IsNaN(size) {
		size = 1
	}
	key := faceKey{halfPx: int(math.Round(size * 2)), bold: bold}

	f.mu.Lock()
	defer f.mu.Unlock()
	if face, ok := f.cache[key]; ok {
		return face
	}
	ttf := f.regular
	if bold {
		ttf = f.bold
	}
	face := truetype.NewFace(ttf, &truetype.Options{Size: float64(key.halfPx) / 2})
	f.cache[key] = face
	return face
}
