package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/ultimomeme/compositor"
	cfg "github.com/automoto/ultimomeme/config"
	"github.com/automoto/ultimomeme/fonts"
	"github.com/automoto/ultimomeme/narrative"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	terminalPad     = 14
	terminalHeaderH = 40
	terminalFooterH = 30
)

// kindColor follows the log classification
func kindColor(k narrative.Kind) color.Color {
	switch k {
	case narrative.KindError:
		return cfg.ErrorRed
	case narrative.KindWarning:
		return cfg.Amber
	case narrative.KindResult:
		return cfg.Cyan
	case narrative.KindSecret:
		return cfg.Pink
	case narrative.KindProcess:
		return cfg.Purple
	default:
		return withAlpha(cfg.NeonGreen, 0.7)
	}
}

type terminalLine struct {
	stamp string
	text  string
	clr   color.Color
}

// drawTerminal renders the newest log lines that fit, oldest at the top,
// followed by the cursor block.
func drawTerminal(screen *ebiten.Image, log *narrative.TerminalLog) {
	l := cfg.Layout
	x, y := l.RightX, l.TopY
	w, h := l.RightW, l.BottomY-l.TopY
	drawPanel(screen, x, y, w, h)

	drawText(screen, narrative.LogTitle, fonts.MonoBold.Get(), x+terminalPad, y+28, cfg.NeonGreen)
	for i, c := range []color.RGBA{cfg.ErrorRed, cfg.Amber, cfg.NeonGreen} {
		vector.FillCircle(screen, float32(x+w-terminalPad-4-float64(2-i)*12), float32(y+22), 4, c, true)
	}

	small := fonts.MonoSmall.Get()
	stampW := textWidth(small, "00:00:00 ")
	textW := int(w) - 2*terminalPad - stampW
	maxLines := int((h-terminalHeaderH-terminalFooterH)/l.LogLineH) - 1

	// wrap from the newest entry backwards until the area is full
	var lines []terminalLine
	entries := log.Entries()
	for i := len(entries) - 1; i >= 0 && len(lines) < maxLines; i-- {
		e := entries[i]
		wrapped := wrapText(small, e.Text, textW)
		block := make([]terminalLine, 0, len(wrapped))
		for j, t := range wrapped {
			tl := terminalLine{text: t, clr: kindColor(e.Kind)}
			if j == 0 {
				tl.stamp = e.Stamp()
			}
			block = append(block, tl)
		}
		lines = append(block, lines...)
	}
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}

	ly := y + terminalHeaderH + l.LogLineH
	for _, tl := range lines {
		if tl.stamp != "" {
			drawText(screen, tl.stamp, small, x+terminalPad, ly, cfg.Faint)
		}
		drawText(screen, tl.text, small, x+terminalPad+float64(stampW), ly, tl.clr)
		ly += l.LogLineH
	}
	drawText(screen, string(compositor.BlockGlyph), small, x+terminalPad, ly, cfg.NeonGreen)

	fy := y + h - terminalFooterH
	vector.StrokeLine(screen, float32(x+terminalPad), float32(fy), float32(x+w-terminalPad), float32(fy), 1, withAlpha(cfg.NeonGreen, 0.2), false)
	drawText(screen, narrative.LogFooter, small, x+terminalPad, fy+20, cfg.Faint)
	records := fmt.Sprintf(narrative.RecordsLabel, log.Len())
	drawText(screen, records, small, x+w-terminalPad-float64(textWidth(small, records)), fy+20, cfg.Faint)
}
