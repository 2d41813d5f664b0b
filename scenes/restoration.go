package scenes

import (
	"sync"

	"github.com/automoto/ultimomeme/compositor"
	cfg "github.com/automoto/ultimomeme/config"
	"github.com/automoto/ultimomeme/systems"
	"github.com/automoto/ultimomeme/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RestorationScene is the interactive restoration interface
type RestorationScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	controlsUI   *ui.ControlsUI
	warningUI    *ui.WarningUI
	once         sync.Once
}

// NewRestorationScene creates a new restoration scene
func NewRestorationScene(sc SceneChanger) *RestorationScene {
	return &RestorationScene{sceneChanger: sc}
}

func (rs *RestorationScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()

	r := systems.GetOrCreateRestoration(rs.ecs).Restoration
	if r.FinalWarning() {
		rs.warningUI.Update()
		return
	}
	rs.controlsUI.SetBusy(r.Restoring())
	rs.controlsUI.Update()
}

func (rs *RestorationScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Void)

	if rs.ecs == nil {
		return
	}
	rs.ecs.DrawLayer(cfg.Default, screen)
	rs.controlsUI.UI.Draw(screen)
	if systems.GetOrCreateRestoration(rs.ecs).Restoration.FinalWarning() {
		rs.warningUI.UI.Draw(screen)
	}
	rs.ecs.DrawLayer(cfg.Overlay, screen)
}

func (rs *RestorationScene) configure() {
	rs.ecs = ecs.NewECS(donburi.NewWorld())

	createRevealScene := func() interface{} {
		return NewRevealScene(rs.sceneChanger)
	}

	systems.NewCanvas(rs.ecs, cfg.RestorationCanvas, compositor.Restoration())

	rs.ecs.AddSystem(systems.UpdateClock)
	rs.ecs.AddSystem(systems.UpdateInput)
	rs.ecs.AddSystem(systems.UpdateWindow)
	rs.ecs.AddSystem(systems.UpdateFade)
	rs.ecs.AddSystem(systems.UpdateCRT)
	rs.ecs.AddSystem(systems.NewUpdateRestoration(rs.sceneChanger, createRevealScene))
	rs.ecs.AddSystem(systems.UpdateCanvas)

	rs.ecs.AddRenderer(cfg.Default, systems.DrawRestoration)
	rs.ecs.AddRenderer(cfg.Default, systems.DrawCanvas)
	rs.ecs.AddRenderer(cfg.Default, systems.DrawCanvasOverlay)
	rs.ecs.AddRenderer(cfg.Overlay, systems.DrawCRT)
	rs.ecs.AddRenderer(cfg.Overlay, systems.DrawFade)
	rs.ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)

	rs.controlsUI = ui.NewControlsUI(
		func() { systems.Restore(rs.ecs) },
		func() { systems.Defrag(rs.ecs) },
		func() { systems.Analyze(rs.ecs) },
	)
	rs.warningUI = ui.NewWarningUI(
		func() { systems.DismissWarning(rs.ecs) },
		func() { systems.RequestReveal(rs.ecs) },
	)
}
