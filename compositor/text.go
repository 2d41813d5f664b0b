package compositor

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// BlockGlyph replaces redacted runes.
const BlockGlyph = '█'

// Fragment is a piece of meme text placed at fractional surface coordinates.
type Fragment struct {
	Text string
	X, Y float64
}

// FragmentCorruption is the corruption factor of the fragment at index i.
// Later fragments degrade faster.
func FragmentCorruption(c float64, i int) float64 {
	return c * (1 + 0.2*float64(i))
}

// FragmentVisible reports whether the fragment at index i is drawn at c.
func FragmentVisible(c float64, i int) bool {
	return FragmentCorruption(c, i) < 0.8
}

// Redact replaces each non-space rune of text with BlockGlyph with
// probability tc/2 once tc exceeds 0.3. Spaces are kept and consume no
// randomness.
func Redact(text string, tc float64, rnd Random) string {
	if tc <= 0.3 {
		return text
	}
	p := tc * 0.5
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r != ' ' && rnd.Float64() < p {
			b.WriteRune(BlockGlyph)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Fragments draws the surviving meme fragments, centered on their anchors,
// over a pink glow.
func Fragments(fragments []Fragment) Pass {
	return func(f *Frame) {
		clarity := 1 - f.C
		face := f.face(24+clarity*16, true)
		if face == nil {
			return
		}
		w, h := float64(f.Width()), float64(f.Height())
		for i, frag := range fragments {
			if !FragmentVisible(f.C, i) {
				continue
			}
			tc := FragmentCorruption(f.C, i)
			dx := (f.Rand.Float64() - 0.5) * tc * 30
			dy := (f.Rand.Float64() - 0.5) * tc * 20
			s := Redact(frag.Text, tc, f.Rand)

			dot := centered(face, s, f.Bounds.Min, w*frag.X+dx, h*frag.Y+dy)
			drawGlow(f.Surface, face, s, dot, Pink, 10+tc*20)
			drawText(f.Surface, face, s, dot, color.NRGBA{R: 255, G: 255, B: 255, A: alpha8(1 - tc*0.5)})
			f.Stats.VisibleFragments++
		}
	}
}

type fringe struct {
	dx  float64
	col color.NRGBA
}

var revealFringes = []fringe{
	{dx: -3, col: color.NRGBA{R: Cyan.R, G: Cyan.G, B: Cyan.B, A: 255}},
	{dx: 3, col: color.NRGBA{R: Pink.R, G: Pink.G, B: Pink.B, A: 255}},
	{dx: 0, col: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
}

// ChromaticLines stacks lines down the middle of the surface, each drawn as a
// cyan and pink fringe under a white core, sharing one jitter per frame.
func ChromaticLines(lines []string) Pass {
	return func(f *Frame) {
		i := f.C
		face := f.face(40+i*20, true)
		if face == nil {
			return
		}
		w, h := float64(f.Width()), float64(f.Height())
		dx := (f.Rand.Float64() - 0.5) * i * 20
		dy := (f.Rand.Float64() - 0.5) * i * 10
		for k, line := range lines {
			s := Redact(line, i, f.Rand)
			y := h*0.3 + float64(k)*60 + dy
			drawGlow(f.Surface, face, s, middled(face, s, f.Bounds.Min, w/2+dx, y), Pink, 20+i*30)
			for _, fr := range revealFringes {
				drawText(f.Surface, face, s, middled(face, s, f.Bounds.Min, w/2+dx+fr.dx, y), fr.col)
			}
		}
	}
}

func drawText(dst *image.RGBA, face font.Face, s string, dot fixed.Point26_6, col color.NRGBA) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  dot,
	}
	d.DrawString(s)
}

func dotAt(origin image.Point, x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round((float64(origin.X) + x) * 64)),
		Y: fixed.Int26_6(math.Round((float64(origin.Y) + y) * 64)),
	}
}

// centered returns the dot that centers s horizontally on x with its baseline at y.
func centered(face font.Face, s string, origin image.Point, x, y float64) fixed.Point26_6 {
	adv := float64(font.MeasureString(face, s)) / 64
	return dotAt(origin, x-adv/2, y)
}

// middled is centered with the em box vertically centered on y.
func middled(face font.Face, s string, origin image.Point, x, y float64) fixed.Point26_6 {
	m := face.Metrics()
	ascent := float64(m.Ascent) / 64
	descent := float64(m.Descent) / 64
	return centered(face, s, origin, x, y+(ascent-descent)/2)
}

// drawGlow paints a blurred silhouette of s in col beneath where the text
// will be drawn. blur follows the canvas shadowBlur convention (sigma = blur/2).
func drawGlow(dst *image.RGBA, face font.Face, s string, dot fixed.Point26_6, col color.RGBA, blur float64) {
	sigma := blur / 2
	if sigma < 0.5 || s == "" {
		return
	}
	bounds, _ := font.BoundString(face, s)
	pad := int(math.Ceil(sigma * 3))
	r := image.Rect(
		bounds.Min.X.Floor()-pad, bounds.Min.Y.Floor()-pad,
		bounds.Max.X.Ceil()+pad, bounds.Max.Y.Ceil()+pad,
	)
	if r.Empty() {
		return
	}

	mask := image.NewAlpha(image.Rect(0, 0, r.Dx(), r.Dy()))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(-r.Min.X, -r.Min.Y),
	}
	d.DrawString(s)

	glow := blurAlpha(mask, sigma)
	dr := r.Add(image.Pt(dot.X.Round(), dot.Y.Round()))
	draw.DrawMask(dst, dr, image.NewUniform(col), image.Point{}, glow, image.Point{}, draw.Over)
}

// blurAlpha gaussian-blurs an alpha mask. Wide kernels are run on a
// downscaled copy and stretched back, which is visually indistinguishable for
// a glow and keeps the frame inside its 100ms budget.
func blurAlpha(mask *image.Alpha, sigma float64) *image.Alpha {
	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	scale := 1
	if sigma > 4 {
		scale = int(sigma / 4)
	}

	var src image.Image = mask
	if scale > 1 {
		src = imaging.Resize(mask, max(1, w/scale), max(1, h/scale), imaging.Box)
	}
	blurred := imaging.Blur(src, sigma/float64(scale))

	out := image.NewAlpha(mask.Rect)
	draw.BiLinear.Scale(out, out.Rect, blurred, blurred.Bounds(), draw.Src, nil)
	return out
}
