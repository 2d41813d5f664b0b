package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/ultimomeme/components"
	"github.com/automoto/ultimomeme/compositor"
	cfg "github.com/automoto/ultimomeme/config"
	"github.com/automoto/ultimomeme/narrative"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	crtScanlineSpacing = 4
	crtNoiseScale      = 4
)

// Overlay textures, built once for the logical screen size
var (
	crtOverlay *ebiten.Image
	crtNoise   *ebiten.Image
	crtDrawOp  = &ebiten.DrawImageOptions{}
)

// UpdateCRT advances the flicker and noise timers
func UpdateCRT(e *ecs.ECS) {
	GetOrCreateCRT(e).CRT.Update(GetOrCreateClock(e).Step)
}

// DrawCRT draws the monitor overlay: static scanlines, vignette, the moving
// scanline, the edge glow and the occasional flicker or noise burst.
func DrawCRT(e *ecs.ECS, screen *ebiten.Image) {
	crt := GetOrCreateCRT(e).CRT
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	ensureCRTTextures(w, h)

	screen.DrawImage(crtOverlay, nil)

	y := float32(crt.Sweep() * float64(h))
	vector.FillRect(screen, 0, y, float32(w), 3, color.NRGBA{R: 255, G: 255, B: 255, A: 10}, false)

	vector.StrokeRect(screen, 1, 1, float32(w-2), float32(h-2), 3, withAlpha(cfg.Purple, 0.25), false)

	if crt.Noisy() {
		crtDrawOp.GeoM.Reset()
		crtDrawOp.GeoM.Scale(crtNoiseScale, crtNoiseScale)
		crtDrawOp.GeoM.Translate(-compositor.Ambient.Float64()*crtNoiseScale*8, -compositor.Ambient.Float64()*crtNoiseScale*8)
		screen.DrawImage(crtNoise, crtDrawOp)
	}
	if crt.Flickering() {
		vector.FillRect(screen, 0, 0, float32(w), float32(h), color.NRGBA{A: 50}, false)
	}
}

func ensureCRTTextures(w, h int) {
	if crtOverlay != nil && crtOverlay.Bounds().Dx() == w && crtOverlay.Bounds().Dy() == h {
		return
	}
	crtOverlay = ebiten.NewImageFromImage(crtOverlayImage(w, h))

	nw, nh := w/crtNoiseScale+16, h/crtNoiseScale+16
	noise := image.NewRGBA(image.Rect(0, 0, nw, nh))
	for i := 0; i < len(noise.Pix); i += 4 {
		v := uint8(compositor.Ambient.Float64() * 255)
		a := uint8(40)
		// premultiplied
		p := uint8(uint16(v) * uint16(a) / 255)
		noise.Pix[i], noise.Pix[i+1], noise.Pix[i+2], noise.Pix[i+3] = p, p, p, a
	}
	crtNoise = ebiten.NewImageFromImage(noise)
}

// crtOverlayImage bakes the static scanlines and the radial vignette.
func crtOverlayImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	cx, cy := float64(w)/2, float64(h)/2
	maxD := math.Hypot(cx, cy)
	for y := 0; y < h; y++ {
		line := 0.0
		if y%crtScanlineSpacing == 0 {
			line = 0.12
		}
		for x := 0; x < w; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy) / maxD
			vignette := math.Max(0, (d-0.55)/0.45)
			vignette = vignette * vignette * 0.7
			a := 1 - (1-line)*(1-vignette)
			img.Pix[img.PixOffset(x, y)+3] = uint8(a * 255)
		}
	}
	return img
}

// GetOrCreateCRT returns the singleton overlay state
func GetOrCreateCRT(e *ecs.ECS) *components.CRTData {
	if _, ok := components.CRT.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.CRT))
		components.CRT.SetValue(ent, components.CRTData{
			CRT: narrative.NewCRT(cfg.CRT, nil),
		})
	}

	ent, _ := components.CRT.First(e.World)
	return components.CRT.Get(ent)
}
