package systems

import (
	"image/color"

	"github.com/automoto/ultimomeme/components"
	cfg "github.com/automoto/ultimomeme/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFade steps the scene fade-in
func UpdateFade(e *ecs.ECS) {
	fade := GetOrCreateFade(e)
	if fade.Done {
		return
	}
	alpha, finished := fade.Tween.Update(float32(GetOrCreateClock(e).Step.Seconds()))
	fade.Alpha = alpha
	fade.Done = finished
}

// DrawFade covers the screen with black while the scene fades in
func DrawFade(e *ecs.ECS, screen *ebiten.Image) {
	fade := GetOrCreateFade(e)
	if fade.Alpha <= 0 {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h),
		color.NRGBA{A: uint8(fade.Alpha * 255)}, false)
}

// GetOrCreateFade returns the singleton fade, starting it on first access
func GetOrCreateFade(e *ecs.ECS) *components.FadeData {
	if _, ok := components.Fade.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Fade))
		components.Fade.SetValue(ent, components.FadeData{
			Tween: gween.New(1, 0, float32(cfg.Fade.SceneFadeIn.Seconds()), ease.OutQuad),
			Alpha: 1,
		})
	}

	ent, _ := components.Fade.First(e.World)
	return components.Fade.Get(ent)
}
