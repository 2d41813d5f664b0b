package systems

import (
	"image/color"
	"strings"

	cfg "github.com/automoto/ultimomeme/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// textWidth returns the advance width of s in pixels
func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

func drawText(screen *ebiten.Image, s string, face font.Face, x, y float64, clr color.Color) {
	text.Draw(screen, s, face, int(x), int(y), clr)
}

func drawTextCentered(screen *ebiten.Image, s string, face font.Face, cx, y float64, clr color.Color) {
	text.Draw(screen, s, face, int(cx)-textWidth(face, s)/2, int(y), clr)
}

// drawPanel draws a translucent box with a thin border
func drawPanel(screen *ebiten.Image, x, y, w, h float64) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.Panel, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, cfg.PanelBorder, false)
}

// wrapText breaks s into lines no wider than maxW. Words longer than a line
// are left whole.
func wrapText(face font.Face, s string, maxW int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if textWidth(face, line+" "+w) > maxW {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

// withAlpha returns c with its alpha scaled by a in [0,1]
func withAlpha(c color.RGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * a)}
}
