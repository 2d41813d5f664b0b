package systems

import (
	"strings"

	"github.com/automoto/ultimomeme/components"
	cfg "github.com/automoto/ultimomeme/config"
	"github.com/automoto/ultimomeme/fonts"
	"github.com/automoto/ultimomeme/logging"
	"github.com/automoto/ultimomeme/narrative"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

const (
	introMarginX   = 80
	introTopY      = 90
	introLineH     = 26
	introWarningY  = 130
	introWarningLH = 16
)

// NewUpdateIntro creates the intro system; it switches to the restoration
// scene once an access code is accepted.
func NewUpdateIntro(sceneChanger SceneChanger, createRestorationScene SceneFactory) ecs.System {
	return func(e *ecs.ECS) {
		intro := GetOrCreateIntro(e)
		step := GetOrCreateClock(e).Step
		intro.Intro.Update(step)
		intro.Title.Update(step)

		if intro.Intro.Done() {
			logging.Named("scene").Info("phase change", zap.String("to", cfg.PhaseRestoration.String()))
			sceneChanger.ChangeScene(createRestorationScene())
		}
	}
}

// SubmitCode hands an access code to the intro
func SubmitCode(e *ecs.ECS, code string) narrative.SubmitResult {
	intro := GetOrCreateIntro(e)
	intro.Code = code
	result := intro.Intro.Submit(code)
	logging.Named("intro").Debug("access code submitted",
		zap.Int("runes", len([]rune(code))),
		zap.Int("result", int(result)))
	return result
}

// DrawIntro renders the boot log, then the classified warning
func DrawIntro(e *ecs.ECS, screen *ebiten.Image) {
	intro := GetOrCreateIntro(e)
	if intro.Intro.Phase() == narrative.IntroBoot {
		drawBoot(screen, intro)
		return
	}
	drawWarning(screen, intro)
	if intro.Intro.ShowingSecret() {
		drawSecret(screen)
	}
}

func drawBoot(screen *ebiten.Image, intro *components.IntroData) {
	face := fonts.Mono.Get()
	drawText(screen, narrative.SystemName+" "+narrative.SystemVersion, fonts.MonoBold.Get(), introMarginX, introTopY-30, cfg.Mint)

	y := float64(introTopY)
	for _, line := range intro.Intro.BootLines() {
		clr := cfg.NeonGreen
		if strings.Contains(line, "ALERTA") {
			clr = cfg.Amber
		}
		drawText(screen, "> "+line, face, introMarginX, y, clr)
		y += introLineH
	}
	if intro.Intro.BootComplete() {
		y += introLineH
		drawText(screen, narrative.BootLoading, face, introMarginX, y, cfg.Cyan)
		w := textWidth(face, narrative.BootLoading)
		vector.FillRect(screen, float32(introMarginX+w+6), float32(y-12), 8, 14, cfg.Cyan, false)
	}
}

func drawWarning(screen *ebiten.Image, intro *components.IntroData) {
	cx := float64(cfg.C.Width) / 2
	drawTextCentered(screen, narrative.SystemName+" "+narrative.SystemVersion, fonts.MonoSmall.Get(), cx, 40, cfg.Dim)
	drawTextCentered(screen, intro.Title.String(), fonts.MonoBold.Get(), cx, 68, cfg.Pink)
	drawTextCentered(screen, "▲ "+narrative.WarningHeader+" ▲", fonts.MonoBold.Get(), cx, 104, cfg.ErrorRed)

	face := fonts.MonoSmall.Get()
	boxW := 0
	for _, line := range narrative.WarningLines {
		boxW = max(boxW, textWidth(face, line))
	}
	boxH := len(narrative.WarningLines)*introWarningLH + 24
	boxX := cx - float64(boxW)/2 - 20
	drawPanel(screen, boxX, introWarningY, float64(boxW)+40, float64(boxH))
	vector.FillRect(screen, float32(boxX), introWarningY, 4, float32(boxH), cfg.ErrorRed, false)

	y := float64(introWarningY + 28)
	for _, line := range narrative.WarningLines {
		drawText(screen, line, face, boxX+20, y, cfg.White)
		y += introWarningLH
	}

	face = fonts.Mono.Get()
	y = introWarningY + float64(boxH) + 36
	drawTextCentered(screen, narrative.AccessPrompt, face, cx, y, cfg.Cyan)
	drawTextCentered(screen, narrative.AccessHint, fonts.MonoSmall.Get(), cx, y+22, cfg.Dim)
	if intro.Intro.AccessError() {
		drawTextCentered(screen, narrative.AccessTooShort, face, cx, float64(cfg.C.Height)-60, cfg.ErrorRed)
	}
}

func drawSecret(screen *ebiten.Image) {
	w, h := float32(cfg.C.Width), float32(cfg.C.Height)
	vector.FillRect(screen, 0, 0, w, h, cfg.Shade, false)
	cx := float64(w) / 2
	drawTextCentered(screen, narrative.SecretTitle, fonts.MonoTitle.Get(), cx, float64(h)/2-10, cfg.Pink)
	drawTextCentered(screen, narrative.SecretGranted, fonts.Mono.Get(), cx, float64(h)/2+30, cfg.Mint)
}

// GetOrCreateIntro returns the singleton intro state
func GetOrCreateIntro(e *ecs.ECS) *components.IntroData {
	if _, ok := components.Intro.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Intro))
		components.Intro.SetValue(ent, components.IntroData{
			Intro: narrative.NewIntro(cfg.Intro),
			Title: narrative.NewGlitchText(narrative.SystemTitle, narrative.IntensityMedium, nil),
		})
	}

	ent, _ := components.Intro.First(e.World)
	return components.Intro.Get(ent)
}
