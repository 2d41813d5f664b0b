package scenes

import (
	"sync"

	"github.com/automoto/ultimomeme/compositor"
	cfg "github.com/automoto/ultimomeme/config"
	"github.com/automoto/ultimomeme/narrative"
	"github.com/automoto/ultimomeme/systems"
	"github.com/automoto/ultimomeme/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RevealScene is the final phase: narration, the corrupted meme and the
// closing question
type RevealScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	restartUI    *ui.RestartUI
	once         sync.Once
}

// NewRevealScene creates a new reveal scene
func NewRevealScene(sc SceneChanger) *RevealScene {
	return &RevealScene{sceneChanger: sc}
}

func (rs *RevealScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()

	if rs.ended() {
		rs.restartUI.Update()
	}
}

func (rs *RevealScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.DrawLayer(cfg.Default, screen)
	if rs.ended() {
		rs.restartUI.UI.Draw(screen)
	}
	rs.ecs.DrawLayer(cfg.Overlay, screen)
}

func (rs *RevealScene) ended() bool {
	return systems.GetOrCreateReveal(rs.ecs).Reveal.Phase() == narrative.RevealEnd
}

func (rs *RevealScene) configure() {
	rs.ecs = ecs.NewECS(donburi.NewWorld())

	createIntroScene := func() interface{} {
		return NewIntroScene(rs.sceneChanger)
	}

	canvas := systems.NewCanvas(rs.ecs, cfg.RevealCanvas, compositor.Reveal())
	canvas.Visible = false

	// Audio system (runs first to initialize audio context)
	rs.ecs.AddSystem(systems.UpdateAudio)
	rs.ecs.AddSystem(systems.UpdateClock)
	rs.ecs.AddSystem(systems.UpdateInput)
	rs.ecs.AddSystem(systems.UpdateWindow)
	rs.ecs.AddSystem(systems.UpdateFade)
	rs.ecs.AddSystem(systems.UpdateCRT)
	rs.ecs.AddSystem(systems.NewUpdateReveal(rs.sceneChanger, createIntroScene))
	rs.ecs.AddSystem(systems.UpdateCanvas)

	rs.ecs.AddRenderer(cfg.Default, systems.DrawReveal)
	rs.ecs.AddRenderer(cfg.Default, systems.DrawCanvas)
	rs.ecs.AddRenderer(cfg.Default, systems.DrawRevealOverlay)
	rs.ecs.AddRenderer(cfg.Overlay, systems.DrawCRT)
	rs.ecs.AddRenderer(cfg.Overlay, systems.DrawFade)
	rs.ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)

	rs.restartUI = ui.NewRestartUI(func() { systems.RestartReveal(rs.ecs) })
}
