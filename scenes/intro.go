package scenes

import (
	"sync"

	cfg "github.com/automoto/ultimomeme/config"
	"github.com/automoto/ultimomeme/narrative"
	"github.com/automoto/ultimomeme/systems"
	"github.com/automoto/ultimomeme/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// IntroScene plays the boot log and asks for an access code
type IntroScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	accessUI     *ui.AccessUI
	once         sync.Once
}

// NewIntroScene creates a new intro scene
func NewIntroScene(sc SceneChanger) *IntroScene {
	return &IntroScene{sceneChanger: sc}
}

func (is *IntroScene) Update() {
	is.once.Do(is.configure)
	is.ecs.Update()

	if systems.GetOrCreateIntro(is.ecs).Intro.Phase() == narrative.IntroWarning {
		is.accessUI.Update()
		if systems.ActionJustPressed(is.ecs, cfg.ActionSubmit) {
			is.accessUI.Submit()
		}
	}
}

func (is *IntroScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Black)

	if is.ecs == nil {
		return
	}
	is.ecs.DrawLayer(cfg.Default, screen)
	intro := systems.GetOrCreateIntro(is.ecs).Intro
	if intro.Phase() == narrative.IntroWarning && !intro.ShowingSecret() {
		is.accessUI.UI.Draw(screen)
	}
	is.ecs.DrawLayer(cfg.Overlay, screen)
}

func (is *IntroScene) configure() {
	is.ecs = ecs.NewECS(donburi.NewWorld())

	createRestorationScene := func() interface{} {
		return NewRestorationScene(is.sceneChanger)
	}

	is.ecs.AddSystem(systems.UpdateClock)
	is.ecs.AddSystem(systems.UpdateInput)
	is.ecs.AddSystem(systems.UpdateWindow)
	is.ecs.AddSystem(systems.UpdateFade)
	is.ecs.AddSystem(systems.UpdateCRT)
	is.ecs.AddSystem(systems.NewUpdateIntro(is.sceneChanger, createRestorationScene))

	is.ecs.AddRenderer(cfg.Default, systems.DrawIntro)
	is.ecs.AddRenderer(cfg.Overlay, systems.DrawCRT)
	is.ecs.AddRenderer(cfg.Overlay, systems.DrawFade)
	is.ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)

	is.accessUI = ui.NewAccessUI(func(code string) {
		systems.SubmitCode(is.ecs, code)
	})
}
