package systems

import (
	"image"
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
	"golang.org/x/image/font"
)

const (
	narrationSize  = 22
	narrationWidth = 760
	crypticLineH   = 12
	revealSweepH   = 80
	revealSweepT   = 3.0 // seconds per sweep
)

// NewUpdateReveal creates the final phase system; it goes back to the intro
// when the restart is accepted.
func NewUpdateReveal(sceneChanger SceneChanger, createIntroScene SceneFactory) ecs.System {
	return func(e *ecs.ECS) {
		data := GetOrCreateReveal(e)
		rv := data.Reveal
		step := GetOrCreateClock(e).Step

		before := rv.Phase()
		rv.Update(step)
		if rv.Phase() != before {
			logging.Named("reveal").Debug("reveal phase", zap.Stringer("phase", rv.Phase()))
		}

		if rv.ShowMeme() {
			if !data.DroneDone {
				QueueSound(e, components.SoundDrone)
				data.DroneDone = true
			}
			if data.MemeScale != nil {
				scale, finished := data.MemeScale.Update(float32(step.Seconds()))
				data.Scale = scale
				if finished {
					data.MemeScale = nil
				}
			}
		}
		if rv.Phase() == narrative.RevealEnd {
			data.Closing.Update(step)
			if ActionJustPressed(e, cfg.ActionSubmit) {
				RestartReveal(e)
			}
		}

		if canvas, ok := GetCanvas(e); ok {
			canvas.Visible = rv.ShowMeme()
			canvas.Level = rv.Intensity()
			canvas.Active = true
			canvas.Scale = float64(data.Scale)
		}

		if rv.RestartRequested() {
			StopDrone()
			logging.Named("scene").Info("phase change", zap.String("to", cfg.PhaseIntro.String()))
			sceneChanger.ChangeScene(createIntroScene())
		}
	}
}

// RestartReveal asks to start over; ignored before the reveal has ended
func RestartReveal(e *ecs.ECS) {
	GetOrCreateReveal(e).Reveal.Restart()
}

// DrawReveal renders the static screen, the narration or the frame around
// the final canvas.
func DrawReveal(e *ecs.ECS, screen *ebiten.Image) {
	data := GetOrCreateReveal(e)
	t := GetOrCreateClock(e).Elapsed.Seconds()
	switch data.Reveal.Phase() {
	case narrative.RevealStatic:
		drawStatic(screen, t)
	case narrative.RevealNarration:
		drawNarration(screen, data.Reveal)
	default:
		drawCryptic(screen, data.Reveal)
		drawRevealFrame(screen, data, t)
	}
}

// DrawRevealOverlay draws what sits above the canvas: the moving sweep and
// the closing texts.
func DrawRevealOverlay(e *ecs.ECS, screen *ebiten.Image) {
	data := GetOrCreateReveal(e)
	if !data.Reveal.ShowMeme() {
		return
	}
	c := cfg.RevealCanvas
	t := GetOrCreateClock(e).Elapsed.Seconds()
	area := image.Rect(int(c.X), int(c.Y), int(c.X)+c.Width, int(c.Y)+c.Height)
	sub := screen.SubImage(area).(*ebiten.Image)
	// -100% to 200% of the canvas height
	p := math.Mod(t, revealSweepT) / revealSweepT
	y := c.Y - float64(c.Height) + p*3*float64(c.Height)
	for i := 0; i < revealSweepH; i += 4 {
		a := 0.1 * math.Sin(math.Pi*float64(i)/revealSweepH)
		vector.FillRect(sub, float32(c.X), float32(y+float64(i)), float32(c.Width), 4, withAlpha(cfg.Pink, a), false)
	}

	if data.Reveal.Phase() != narrative.RevealEnd {
		return
	}
	cx := float64(cfg.C.Width) / 2
	y = c.Y + float64(c.Height) + 34
	drawTextCentered(screen, data.Closing.String(), fonts.MonoBold.Get(), cx, y, cfg.Pink)
	drawTextCentered(screen, narrative.ClosingRemark, fonts.Mono.Get(), cx, y+26, withAlpha(cfg.White, 0.4))
	drawTextCentered(screen, narrative.ClosingTruth, fonts.Mono.Get(), cx, y+44, withAlpha(cfg.White, 0.4))

	small := fonts.MonoSmall.Get()
	h := float64(cfg.C.Height)
	drawTextCentered(screen, narrative.CreditsTitle, small, cx, h-22, withAlpha(cfg.Purple, 0.3))
	drawTextCentered(screen, narrative.CreditsSubtitle, small, cx, h-8, withAlpha(cfg.Purple, 0.3))
}

func drawStatic(screen *ebiten.Image, t float64) {
	cx, cy := float64(cfg.C.Width)/2, float64(cfg.C.Height)/2
	pulse := 0.75 + 0.25*math.Sin(2*math.Pi*t/2)
	drawTextCentered(screen, narrative.StaticCaption, fonts.MonoTitle.Get(), cx, cy, withAlpha(cfg.Pink, pulse))
	for i := 0; i < 3; i++ {
		a := 0.65 + 0.35*math.Sin(2*math.Pi*(t-float64(i)*0.2))
		vector.FillRect(screen, float32(cx-22+float64(i)*18), float32(cy+24), 12, 12, withAlpha(cfg.Cyan, a), false)
	}
}

func drawNarration(screen *ebiten.Image, rv *narrative.Reveal) {
	cx, cy := float64(cfg.C.Width)/2, float64(cfg.C.Height)/2
	drawTextCentered(screen, narrative.DiaryHeader, fonts.MonoSmall.Get(), cx, cy-90, cfg.Purple)

	face := faceAt(narrationSize, false)
	lines := wrapText(face, rv.Narration(), narrationWidth)
	y := cy - float64(len(lines)-1)*15
	for _, line := range lines {
		drawTextCentered(screen, line, face, cx, y, cfg.White)
		y += 30
	}

	// progress dots
	n := len(narrative.FinalNarration)
	x0 := cx - float64(n-1)*5
	for i := 0; i < n; i++ {
		clr := withAlpha(cfg.White, 0.2)
		if i <= rv.Line() {
			clr = withAlpha(cfg.Pink, 1)
		}
		vector.FillCircle(screen, float32(x0+float64(i)*10), float32(cy+110), 3, clr, true)
	}
}

func drawCryptic(screen *ebiten.Image, rv *narrative.Reveal) {
	small := fonts.MonoSmall.Get()
	msgs := rv.Cryptic()
	y := cfg.RevealCanvas.Y - 16 - float64(len(narrative.CrypticMessages)-1)*crypticLineH
	for _, msg := range msgs {
		drawTextCentered(screen, msg, small, float64(cfg.C.Width)/2, y, withAlpha(cfg.NeonGreen, 0.6))
		y += crypticLineH
	}
}

func drawRevealFrame(screen *ebiten.Image, data *components.RevealData, t float64) {
	c := cfg.RevealCanvas
	s := float64(data.Scale)
	w, h := float64(c.Width)*s, float64(c.Height)*s
	x := c.X + (float64(c.Width)-w)/2
	y := c.Y + (float64(c.Height)-h)/2
	for i := 1; i <= 4; i++ {
		g := float64(i) * 6
		vector.StrokeRect(screen, float32(x-g), float32(y-g), float32(w+2*g), float32(h+2*g), 6, withAlpha(cfg.Pink, 0.3/float64(i*i)), false)
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, withAlpha(cfg.Purple, 0.5), false)
}

// faceAt returns a Go Mono face at any pixel size, falling back to the HUD face
func faceAt(size float64, bold bool) font.Face {
	if faces := sharedFaces(); faces != nil {
		return faces.Face(size, bold)
	}
	return fonts.Mono.Get()
}

// GetOrCreateReveal returns the singleton final phase state
func GetOrCreateReveal(e *ecs.ECS) *components.RevealData {
	if _, ok := components.Reveal.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Reveal))
		components.Reveal.SetValue(ent, components.RevealData{
			Reveal:    narrative.NewReveal(cfg.Reveal),
			Closing:   narrative.NewGlitchText(narrative.ClosingQuestion, narrative.IntensityHigh, nil),
			MemeScale: gween.New(0.9, 1, float32(cfg.Fade.MemeScaleIn.Seconds()), ease.OutCubic),
			Scale:     0.9,
		})
	}

	ent, _ := components.Reveal.First(e.World)
	return components.Reveal.Get(ent)
}
