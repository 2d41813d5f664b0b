package systems

import (
	"fmt"
	"math"

	"github.com/automoto/ultimomeme/components"
	cfg "github.com/automoto/ultimomeme/config"
	"github.com/automoto/ultimomeme/fonts"
	"github.com/automoto/ultimomeme/logging"
	"github.com/automoto/ultimomeme/narrative"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

const (
	controlsPanelH = 176
	quotePanelH    = 84
	integrityBarH  = 8
	spinnerRadius  = 12
)

// NewUpdateRestoration creates the restoration system. It feeds key actions
// to the phase, mirrors the level into the canvas and moves on to the
// reveal scene once the final warning is accepted.
func NewUpdateRestoration(sceneChanger SceneChanger, createRevealScene SceneFactory) ecs.System {
	return func(e *ecs.ECS) {
		data := GetOrCreateRestoration(e)
		r := data.Restoration
		clock := GetOrCreateClock(e)
		input := getOrCreateInput(e)

		if r.FinalWarning() {
			if input.Pressed(cfg.ActionBack) {
				DismissWarning(e)
			} else if input.Pressed(cfg.ActionSubmit) {
				RequestReveal(e)
			}
		} else {
			switch {
			case input.Pressed(cfg.ActionRestore):
				Restore(e)
			case input.Pressed(cfg.ActionDefrag):
				Defrag(e)
			case input.Pressed(cfg.ActionAnalyze):
				Analyze(e)
			}
			for _, k := range KonamiKeys(input) {
				wasOn := r.Archaeologist()
				r.Key(k)
				if !wasOn && r.Archaeologist() {
					logging.Named("restoration").Info("archaeologist mode on")
				}
			}
		}

		r.Update(clock.Step)
		data.Title.Update(clock.Step)
		updateGauge(data, clock.Step.Seconds())

		if canvas, ok := GetCanvas(e); ok {
			canvas.Level = r.Level()
			canvas.Active = r.Restoring()
		}

		if r.RevealRequested() {
			logging.Named("scene").Info("phase change",
				zap.String("to", cfg.PhaseFinal.String()),
				zap.Int("attempts", r.Attempts()),
				zap.Float64("level", r.Level()))
			sceneChanger.ChangeScene(createRevealScene())
		}
	}
}

// Restore starts a restoration attempt
func Restore(e *ecs.ECS) {
	r := GetOrCreateRestoration(e).Restoration
	r.Key(narrative.KeyOther)
	if r.Restore() {
		logging.Named("restoration").Debug("restore", zap.Int("attempt", r.Attempts()), zap.Float64("level", r.Level()))
	}
}

// Defrag runs the humorous defragmentation
func Defrag(e *ecs.ECS) {
	r := GetOrCreateRestoration(e).Restoration
	r.Key(narrative.KeyOther)
	if r.Defrag() {
		logging.Named("restoration").Debug("defrag", zap.Float64("level", r.Level()))
	}
}

// Analyze logs the memetic analysis
func Analyze(e *ecs.ECS) {
	r := GetOrCreateRestoration(e).Restoration
	r.Key(narrative.KeyOther)
	r.Analyze()
}

// DismissWarning closes the final warning
func DismissWarning(e *ecs.ECS) {
	GetOrCreateRestoration(e).Restoration.DismissWarning()
}

// RequestReveal accepts the final warning
func RequestReveal(e *ecs.ECS) {
	GetOrCreateRestoration(e).Restoration.RequestReveal()
}

// updateGauge restarts the gauge tween whenever the level moved and steps it
func updateGauge(data *components.RestorationData, dt float64) {
	target := float32(data.Restoration.Level())
	if math.Abs(float64(target-data.GaugeTarget)) > 0.05 {
		data.Gauge = gween.New(data.GaugeValue, target, float32(cfg.Fade.GaugeEase.Seconds()), ease.OutCubic)
		data.GaugeTarget = target
	}
	if data.Gauge == nil {
		return
	}
	value, finished := data.Gauge.Update(float32(dt))
	data.GaugeValue = value
	if finished {
		data.Gauge = nil
	}
}

// DrawRestoration renders the whole restoration interface except the canvas
// itself and the ebitenui widgets.
func DrawRestoration(e *ecs.ECS, screen *ebiten.Image) {
	data := GetOrCreateRestoration(e)
	drawRestorationHeader(screen, data, GetOrCreateClock(e))
	drawControlsPanel(screen, data.Restoration)
	drawMetricsPanel(screen, data)
	drawArtifactPanel(screen, data.Restoration)
	drawQuote(screen, data.Restoration)
	drawTerminal(screen, data.Restoration.Log())
}

// DrawCanvasOverlay draws the captions and the critical banner on top of the canvas
func DrawCanvasOverlay(e *ecs.ECS, screen *ebiten.Image) {
	r := GetOrCreateRestoration(e).Restoration
	c := cfg.RestorationCanvas
	small := fonts.MonoSmall.Get()
	bottom := c.Y + float64(c.Height) - 8

	drawText(screen, narrative.ArtifactName, small, c.X+8, bottom, withAlpha(cfg.Cyan, 0.6))
	caption := fmt.Sprintf(narrative.IntegrityCaption, r.Integrity())
	drawText(screen, caption, small, c.X+float64(c.Width)-8-float64(textWidth(small, caption)), bottom, withAlpha(cfg.Pink, 0.6))

	if r.Level() > 80 {
		clock := GetOrCreateClock(e)
		// 0.5s pulse
		pulse := 0.75 + 0.25*math.Cos(2*math.Pi*clock.Elapsed.Seconds()/0.5)
		w := float64(textWidth(small, narrative.CriticalBanner)) + 16
		x := c.X + (float64(c.Width)-w)/2
		vector.FillRect(screen, float32(x), float32(c.Y+8), float32(w), 20, withAlpha(cfg.Black, 0.8), false)
		vector.StrokeRect(screen, float32(x), float32(c.Y+8), float32(w), 20, 1, withAlpha(cfg.ErrorRed, 0.5*pulse), false)
		drawText(screen, narrative.CriticalBanner, small, x+8, c.Y+22, withAlpha(cfg.ErrorRed, pulse))
	}
}

func drawRestorationHeader(screen *ebiten.Image, data *components.RestorationData, clock *components.ClockData) {
	r := data.Restoration
	l := cfg.Layout
	w := float64(cfg.C.Width) - 2*l.Margin
	drawPanel(screen, l.Margin, 12, w, l.HeaderH)

	drawText(screen, data.Title.String(), fonts.MonoBold.Get(), l.Margin+16, 40, cfg.Purple)
	drawText(screen, narrative.SystemTitle+" - "+narrative.SystemVersion, fonts.MonoSmall.Get(), l.Margin+16, 60, withAlpha(cfg.Cyan, 0.6))

	right := l.Margin + w - 60
	face := fonts.Mono.Get()
	attempts := narrative.AttemptsLabel + fmt.Sprint(r.Attempts())
	drawText(screen, attempts, face, right-float64(textWidth(face, attempts)), 38, cfg.Pink)

	small := fonts.MonoSmall.Get()
	tag := narrative.SessionLabel + " " + shortSession(r.Session())
	if r.Archaeologist() {
		tag = narrative.ArchaeologistTag
	}
	drawText(screen, tag, small, right-float64(textWidth(small, tag)), 58, withAlpha(cfg.NeonGreen, 0.6))

	drawSpinner(screen, l.Margin+w-30, 42, r.Restoring(), clock.Elapsed.Seconds())
}

// drawSpinner is a ring with a gap, turning once every 2s while restoring
func drawSpinner(screen *ebiten.Image, cx, cy float64, spinning bool, t float64) {
	angle := 0.0
	if spinning {
		angle = 2 * math.Pi * math.Mod(t, 2) / 2
	}
	drawArc(screen, cx, cy, spinnerRadius, angle, angle+1.5*math.Pi, 2, cfg.Purple)
}

func shortSession(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func drawControlsPanel(screen *ebiten.Image, r *narrative.Restoration) {
	l := cfg.Layout
	drawPanel(screen, l.LeftX, l.TopY, l.LeftW, controlsPanelH)
	drawText(screen, narrative.ControlsTitle, fonts.MonoBold.Get(), l.LeftX+16, l.TopY+28, cfg.Cyan)

	small := fonts.MonoSmall.Get()
	hint := "[1] [2] [3]"
	if r.Restoring() {
		hint = narrative.RestoringLabel
	}
	drawText(screen, hint, small, l.LeftX+16, l.TopY+controlsPanelH-10, cfg.Faint)
}

func drawArtifactPanel(screen *ebiten.Image, r *narrative.Restoration) {
	c := cfg.RestorationCanvas
	face := fonts.MonoSmall.Get()
	y := c.Y - 12

	drawText(screen, narrative.FileLabel+narrative.ArtifactName, fonts.Mono.Get(), c.X, y, cfg.Pink)

	status := r.Status()
	label := status.String()
	right := c.X + float64(c.Width)
	drawText(screen, label, face, right-float64(textWidth(face, label)), y, cfg.Dim)
	vector.FillCircle(screen, float32(right-float64(textWidth(face, label))-10), float32(y-4), 4, statusColor(status), true)

	// integrity bar
	barY := c.Y + float64(c.Height) + 28
	drawText(screen, narrative.IntegrityLabel, face, c.X, barY-6, cfg.Dim)
	value := fmt.Sprintf("%.1f%%", r.Integrity())
	drawText(screen, value, face, right-float64(textWidth(face, value)), barY-6, cfg.Dim)

	vector.FillRect(screen, float32(c.X), float32(barY), float32(c.Width), integrityBarH, withAlpha(cfg.Black, 0.5), false)
	vector.StrokeRect(screen, float32(c.X), float32(barY), float32(c.Width), integrityBarH, 1, withAlpha(cfg.Purple, 0.3), false)
	fill := cfg.NeonGreen
	if r.Level() > 80 {
		fill = cfg.ErrorRed
	}
	alpha := 1.0
	if r.Restoring() {
		alpha = 0.7
	}
	vector.FillRect(screen, float32(c.X), float32(barY), float32(float64(c.Width)*r.Integrity()/100), integrityBarH, withAlpha(fill, alpha), false)
}

func drawQuote(screen *ebiten.Image, r *narrative.Restoration) {
	quote, showing := r.Quote()
	if !showing {
		return
	}
	c := cfg.RestorationCanvas
	y := c.Y + float64(c.Height) + 52
	drawPanel(screen, c.X, y, float64(c.Width), quotePanelH)
	vector.FillRect(screen, float32(c.X), float32(y), 4, quotePanelH, cfg.Pink, false)

	drawText(screen, narrative.HistorianLabel, fonts.MonoSmall.Get(), c.X+16, y+20, cfg.Purple)
	face := fonts.Mono.Get()
	ly := y + 42
	for _, line := range wrapText(face, quote, c.Width-32) {
		drawText(screen, line, face, c.X+16, ly, withAlpha(cfg.White, 0.8))
		ly += 18
	}
}

// GetOrCreateRestoration returns the singleton restoration state
func GetOrCreateRestoration(e *ecs.ECS) *components.RestorationData {
	if _, ok := components.Restoration.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Restoration))
		r := narrative.NewRestoration(cfg.Restoration, nil, nil)
		components.Restoration.SetValue(ent, components.RestorationData{
			Restoration: r,
			Title:       narrative.NewGlitchText(narrative.RestorationTitle, narrative.IntensityLow, nil),
			GaugeValue:  float32(r.Level()),
			GaugeTarget: float32(r.Level()),
		})
		logging.Named("restoration").Info("session started",
			zap.String("session", r.Session()),
			zap.Float64("level", r.Level()))
	}

	ent, _ := components.Restoration.First(e.World)
	return components.Restoration.Get(ent)
}
