package systems

import (
	"image"
	"sync"

	"github.com/automoto/ultimomeme/components"
	"github.com/automoto/ultimomeme/compositor"
	cfg "github.com/automoto/ultimomeme/config"
	"github.com/automoto/ultimomeme/fonts"
	"github.com/automoto/ultimomeme/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Faces shared by every compositor, parsed once
var (
	canvasFaces     *fonts.Faces
	canvasFacesOnce sync.Once
)

var canvasDrawOp = &ebiten.DrawImageOptions{}

func sharedFaces() compositor.FaceSource {
	canvasFacesOnce.Do(func() {
		faces, err := fonts.NewFaces()
		if err != nil {
			logging.Named("canvas").Warn("canvas text disabled", zap.Error(err))
			return
		}
		canvasFaces = faces
	})
	if canvasFaces == nil {
		return nil
	}
	return canvasFaces
}

// NewCanvas creates the scene's canvas entity rendering profile.
func NewCanvas(e *ecs.ECS, cc cfg.CanvasConfig, profile compositor.Profile) *components.CanvasData {
	ent := e.World.Entry(e.World.Create(components.Canvas))
	components.Canvas.SetValue(ent, components.CanvasData{
		Compositor: compositor.New(profile, sharedFaces()),
		Limiter:    compositor.NewLimiter(cc.Interval),
		Surface:    image.NewRGBA(image.Rect(0, 0, cc.Width, cc.Height)),
		Image:      ebiten.NewImage(cc.Width, cc.Height),
		X:          cc.X,
		Y:          cc.Y,
		Visible:    true,
		Scale:      1,
	})
	logging.Named("canvas").Debug("canvas created",
		zap.String("profile", profile.Name),
		zap.Int("width", cc.Width),
		zap.Int("height", cc.Height),
		zap.Duration("interval", cc.Interval))
	return components.Canvas.Get(ent)
}

// GetCanvas returns the scene's canvas, if any
func GetCanvas(e *ecs.ECS) (*components.CanvasData, bool) {
	ent, ok := components.Canvas.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Canvas.Get(ent), true
}

// UpdateCanvas renders a new frame when the limiter allows and uploads it.
// Level and Active are set by the phase systems before this runs.
func UpdateCanvas(e *ecs.ECS) {
	canvas, ok := GetCanvas(e)
	if !ok || !canvas.Visible {
		return
	}
	if !canvas.Limiter.Ready(GetOrCreateClock(e).Now()) {
		return
	}
	canvas.Compositor.Render(canvas.Surface, canvas.Level, canvas.Active)
	canvas.Image.WritePixels(canvas.Surface.Pix)
	canvas.Jitter = compositor.RollJitter(canvas.Compositor.Rand, canvas.Active)
}

// DrawCanvas draws the last uploaded frame, shaken by the jitter offset
func DrawCanvas(e *ecs.ECS, screen *ebiten.Image) {
	canvas, ok := GetCanvas(e)
	if !ok || !canvas.Visible || canvas.Scale <= 0 {
		return
	}
	w := float64(canvas.Surface.Bounds().Dx())
	h := float64(canvas.Surface.Bounds().Dy())

	canvasDrawOp.GeoM.Reset()
	canvasDrawOp.GeoM.Translate(-w/2, -h/2)
	canvasDrawOp.GeoM.Scale(canvas.Scale, canvas.Scale)
	canvasDrawOp.GeoM.Translate(canvas.X+w/2+canvas.Jitter.X, canvas.Y+h/2+canvas.Jitter.Y)
	screen.DrawImage(canvas.Image, canvasDrawOp)
}
