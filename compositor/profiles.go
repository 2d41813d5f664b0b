package compositor

import (
	"image/color"
	"math"
)

var (
	Pink      = color.RGBA{R: 0xFF, G: 0x71, B: 0xCE, A: 0xFF}
	Cyan      = color.RGBA{R: 0x01, G: 0xCD, B: 0xFE, A: 0xFF}
	Purple    = color.RGBA{R: 0xB9, G: 0x67, B: 0xFF, A: 0xFF}
	Mint      = color.RGBA{R: 0x05, G: 0xFF, B: 0xA1, A: 0xFF}
	Amber     = color.RGBA{R: 0xFF, G: 0xB3, B: 0x47, A: 0xFF}
	NeonGreen = color.RGBA{R: 0x39, G: 0xFF, B: 0x14, A: 0xFF}
	ErrorRed  = color.RGBA{R: 255, G: 71, B: 87, A: 255}

	Void        = color.RGBA{R: 0x0a, G: 0x06, B: 0x12, A: 0xFF}
	FrameStroke = color.RGBA{R: 185, G: 103, B: 255, A: 255}
	FramePanel  = color.RGBA{R: 10, G: 6, B: 18, A: 255}
)

// MemeFragments is the restoration canvas text, in drawing order.
var MemeFragments = []Fragment{
	{Text: "ISSO FOI", X: 0.3, Y: 0.2},
	{Text: "LONGE", X: 0.5, Y: 0.4},
	{Text: "DEMAIS", X: 0.4, Y: 0.6},
	{Text: "?", X: 0.7, Y: 0.8},
}

// RevealLines is the text of the final reveal, one line per row.
var RevealLines = []string{"ISSO", "FOI", "LONGE", "DEMAIS"}

// Restoration is the full pipeline used by the restoration canvas.
func Restoration() Profile {
	return Profile{
		Name:       "restoration",
		Background: Void,
		Passes: []Pass{
			FillBackground,
			GlitchBlocks(BlockStyle{
				Palette: []color.RGBA{Pink, Cyan, Purple, Mint, Amber},
				Count:   func(c float64) int { return int(math.Round(50 * c)) },
				Alpha:   func(u, _ float64) float64 { return u*0.3 + 0.1 },
				MinW:    20,
				SpanW:   100,
				MinH:    5,
				SpanH:   30,
			}),
			SmearScanlines,
			Datamosh(20),
			ChromaticShift,
			MemeFrame,
			Fragments(MemeFragments),
			ErrorOverlay,
			Scanlines(func(float64) float64 { return 0.1 }),
		},
	}
}

// Reveal is the reduced pipeline of the final reveal.
func Reveal() Profile {
	return Profile{
		Name:       "reveal",
		Background: Void,
		Passes: []Pass{
			FillBackground,
			GlitchBlocks(BlockStyle{
				Palette: []color.RGBA{Pink, Cyan, Purple, NeonGreen},
				Count:   func(float64) int { return 20 },
				Alpha:   func(u, c float64) float64 { return 0.1 + u*0.2*c },
				MinW:    50,
				SpanW:   100,
				MinH:    30,
				SpanH:   60,
			}),
			ChromaticLines(RevealLines),
			Scanlines(func(c float64) float64 { return 0.2 + 0.2*c }),
			Noise,
			CorruptionBars,
		},
	}
}
