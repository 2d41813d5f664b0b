package components

import (
	"image"

	"github.com/automoto/ultimomeme/compositor"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// CanvasData holds one compositor surface and its GPU copy.
type CanvasData struct {
	Compositor *compositor.Compositor
	Limiter    *compositor.Limiter
	Surface    *image.RGBA
	Image      *ebiten.Image

	X, Y   float64
	Jitter compositor.Offset

	Level   float64
	Active  bool
	Visible bool
	Scale   float64 // draw scale around the canvas center, 1 when unset
}

var Canvas = donburi.NewComponentType[CanvasData]()
