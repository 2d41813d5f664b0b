package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/ultimomeme/components"
	cfg "github.com/automoto/ultimomeme/config"
	"github.com/automoto/ultimomeme/fonts"
	"github.com/automoto/ultimomeme/narrative"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	metricsPanelH  = 340
	gaugeRadius    = 40
	gaugeWidth     = 8
	arcSegments    = 48
	indicatorH     = 20
	indicatorGap   = 8
	metricBarH     = 6
	metricRowH     = 18
	metricBoxInset = 12
)

// statusColor matches the status label: red, amber or green
func statusColor(s narrative.Status) color.RGBA {
	switch s {
	case narrative.StatusCritical:
		return cfg.ErrorRed
	case narrative.StatusUnstable:
		return cfg.Amber
	default:
		return cfg.NeonGreen
	}
}

func severityColor(s narrative.Severity) color.RGBA {
	switch s {
	case narrative.SeverityCritical:
		return cfg.ErrorRed
	case narrative.SeverityWarning:
		return cfg.Amber
	default:
		return cfg.Cyan
	}
}

func drawMetricsPanel(screen *ebiten.Image, data *components.RestorationData) {
	r := data.Restoration
	l := cfg.Layout
	x := l.LeftX
	y := l.TopY + controlsPanelH + 16
	w := l.LeftW
	drawPanel(screen, x, y, w, metricsPanelH)

	small := fonts.MonoSmall.Get()
	drawText(screen, narrative.MetricsTitle, fonts.MonoBold.Get(), x+16, y+28, cfg.Cyan)

	// dynamic metric
	metric := r.Metric()
	bx, by, bw := x+metricBoxInset, y+44, w-2*metricBoxInset
	vector.FillRect(screen, float32(bx), float32(by), float32(bw), 48, withAlpha(cfg.Black, 0.3), false)
	vector.StrokeRect(screen, float32(bx), float32(by), float32(bw), 48, 1, withAlpha(cfg.Purple, 0.3), false)
	drawText(screen, metric.Label, small, bx+8, by+18, cfg.Purple)
	value := fmt.Sprintf("%d%%", metric.Value)
	barW := bw - 16 - 48
	vector.FillRect(screen, float32(bx+8), float32(by+30), float32(barW), metricBarH, withAlpha(cfg.Black, 0.5), false)
	vector.FillRect(screen, float32(bx+8), float32(by+30), float32(barW*float64(metric.Value)/100), metricBarH, cfg.Pink, false)
	drawText(screen, value, small, bx+bw-8-float64(textWidth(small, value)), by+37, cfg.White)

	// static metrics
	ry := by + 48 + 24
	for _, m := range narrative.StaticMetrics {
		drawText(screen, m.Label, small, x+16, ry, cfg.Dim)
		drawText(screen, m.Value, small, x+w-16-float64(textWidth(small, m.Value)), ry, severityColor(m.Severity))
		ry += metricRowH
	}

	// gauge
	vector.StrokeLine(screen, float32(x+16), float32(ry), float32(x+w-16), float32(ry), 1, withAlpha(cfg.Purple, 0.2), false)
	drawTextCentered(screen, narrative.GaugeLabel, small, x+w/2, ry+22, cfg.Dim)
	cx, cy := x+w/2, ry+32+gaugeRadius+4
	status := narrative.StatusFor(float64(data.GaugeValue))
	vector.StrokeCircle(screen, float32(cx), float32(cy), gaugeRadius, gaugeWidth, withAlpha(cfg.Purple, 0.2), true)
	start := -math.Pi / 2
	drawArc(screen, cx, cy, gaugeRadius, start, start+2*math.Pi*float64(data.GaugeValue)/100, gaugeWidth, statusColor(status))
	label := fmt.Sprintf("%.0f%%", data.GaugeValue)
	drawTextCentered(screen, label, fonts.MonoBold.Get(), cx, cy+7, statusColor(status))

	// indicators
	ind := r.Indicators()
	iy := cy + gaugeRadius + 20
	iw := (w - 32 - 2*indicatorGap) / 3
	for i, lamp := range []struct {
		label string
		on    bool
	}{{"MEM", ind.MEM}, {"CPU", ind.CPU}, {"NET", ind.NET}} {
		ix := x + 16 + float64(i)*(iw+indicatorGap)
		border, text := withAlpha(cfg.NeonGreen, 0.3), withAlpha(cfg.NeonGreen, 0.5)
		if lamp.on {
			border, text = withAlpha(cfg.ErrorRed, 1), withAlpha(cfg.ErrorRed, 1)
			vector.FillRect(screen, float32(ix), float32(iy), float32(iw), indicatorH, withAlpha(cfg.ErrorRed, 0.1), false)
		}
		vector.StrokeRect(screen, float32(ix), float32(iy), float32(iw), indicatorH, 1, border, false)
		drawTextCentered(screen, lamp.label, small, ix+iw/2, iy+14, text)
	}

	drawTextCentered(screen, narrative.KonamiHint, small, x+w/2, y+metricsPanelH+26, withAlpha(cfg.Purple, 0.3))
}

// drawArc strokes a circular arc from a0 to a1 (radians, clockwise on screen)
// as short line segments.
func drawArc(screen *ebiten.Image, cx, cy, r, a0, a1, width float64, clr color.Color) {
	if a1 <= a0 {
		return
	}
	n := int(math.Ceil(arcSegments * (a1 - a0) / (2 * math.Pi)))
	step := (a1 - a0) / float64(n)
	px, py := cx+r*math.Cos(a0), cy+r*math.Sin(a0)
	for i := 1; i <= n; i++ {
		a := a0 + float64(i)*step
		x, y := cx+r*math.Cos(a), cy+r*math.Sin(a)
		vector.StrokeLine(screen, float32(px), float32(py), float32(x), float32(y), float32(width), clr, true)
		px, py = x, y
	}
}
