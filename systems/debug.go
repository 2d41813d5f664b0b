package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/ultimomeme/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug prints the tick rate and the last compositor frame statistics
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	msg := fmt.Sprintf("TPS %.1f  FPS %.1f", ebiten.ActualTPS(), ebiten.ActualFPS())
	if canvas, ok := GetCanvas(ecs); ok {
		s := canvas.Compositor.Stats()
		msg += fmt.Sprintf("\n%s level %.1f active %t\nframes %d blocks %d smear %d mosh %d shift %d\nfragments %d errors %t/%d noise %d bars %d\njitter %.1f,%.1f",
			canvas.Compositor.Profile.Name, canvas.Level, canvas.Active,
			s.Frames, s.Blocks, s.SmearedStrips, s.MoshedTiles, s.Shift,
			s.VisibleFragments, s.ErrorOverlay, s.ErrorLines, s.NoisyPixels, s.Bars,
			canvas.Jitter.X, canvas.Jitter.Y)

		// canvas bounds
		b := canvas.Surface.Bounds()
		vector.StrokeRect(screen, float32(canvas.X), float32(canvas.Y), float32(b.Dx()), float32(b.Dy()), 1, color.RGBA{0, 255, 0, 255}, false)
	}

	vector.FillRect(screen, 4, float32(cfg.C.Height-84), 420, 80, color.NRGBA{A: 180}, false)
	ebitenutil.DebugPrintAt(screen, msg, 8, cfg.C.Height-82)
}
