package compositor

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// FillBackground paints the profile background over the whole surface.
func FillBackground(f *Frame) {
	draw.Draw(f.Surface, f.Bounds, image.NewUniform(f.Profile.Background), image.Point{}, draw.Src)
}

// BlockStyle parameterizes the random translucent rectangle overlay.
type BlockStyle struct {
	Palette []color.RGBA
	Count   func(c float64) int
	Alpha   func(u, c float64) float64

	MinW, SpanW float64
	MinH, SpanH float64
}

// GlitchBlocks overlays Count(c) rectangles of random size, position and
// palette color. Draw order per block is width, height, x, y, color, alpha.
func GlitchBlocks(style BlockStyle) Pass {
	return func(f *Frame) {
		if len(style.Palette) == 0 || style.Count == nil {
			return
		}
		n := style.Count(f.C)
		w, h := float64(f.Width()), float64(f.Height())
		for i := 0; i < n; i++ {
			bw := f.Rand.Float64()*style.SpanW + style.MinW
			bh := f.Rand.Float64()*style.SpanH + style.MinH
			x := f.Rand.Float64() * w
			y := f.Rand.Float64() * h
			col := style.Palette[pick(f.Rand.Float64(), len(style.Palette))]
			alpha := style.Alpha(f.Rand.Float64(), f.C)
			fillRect(f.Surface, rectF(f.Bounds.Min, x, y, bw, bh), col, alpha)
		}
		f.Stats.Blocks += max(n, 0)
	}
}

// SmearScanlines shifts every second 2px strip sideways with probability 0.3c.
func SmearScanlines(f *Frame) {
	p := 0.3 * f.C
	reach := 10 * f.C
	b := f.Bounds
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if f.Rand.Float64() >= p {
			continue
		}
		offset := int(math.Round((f.Rand.Float64() - 0.5) * 2 * reach))
		strip := image.Rect(b.Min.X, y, b.Max.X, min(y+2, b.Max.Y))
		SelfCopy(f.Surface, strip, strip.Min.Add(image.Pt(offset, 0)))
		f.Stats.SmearedStrips++
	}
}

// Datamosh replaces size x size tiles, with probability 0.2c each, by a copy of
// a random tile of the same surface.
func Datamosh(size int) Pass {
	return func(f *Frame) {
		if size <= 0 {
			return
		}
		p := 0.2 * f.C
		cols := float64(f.Width()) / float64(size)
		rows := float64(f.Height()) / float64(size)
		for x := 0; x < f.Width(); x += size {
			for y := 0; y < f.Height(); y += size {
				if f.Rand.Float64() >= p {
					continue
				}
				sx := int(math.Floor(f.Rand.Float64()*cols)) * size
				sy := int(math.Floor(f.Rand.Float64()*rows)) * size
				src := image.Rect(sx, sy, sx+size, sy+size).Add(f.Bounds.Min)
				SelfCopy(f.Surface, src, f.Bounds.Min.Add(image.Pt(x, y)))
				f.Stats.MoshedTiles++
			}
		}
	}
}

// SelfCopy copies the src region of img to dp. The whole source region is
// read into a snapshot before any destination pixel is written, so
// overlapping regions behave like a copy from the pre-call surface.
func SelfCopy(img *image.RGBA, src image.Rectangle, dp image.Point) {
	src = src.Intersect(img.Rect)
	if src.Empty() {
		return
	}
	snap := image.NewRGBA(src)
	draw.Draw(snap, src, img, src.Min, draw.Src)
	dr := image.Rectangle{Min: dp, Max: dp.Add(src.Size())}
	draw.Draw(img, dr, snap, src.Min, draw.Src)
}

// ChromaticShift splits red and blue by floor(10c) pixels along the flat
// pixel buffer.
func ChromaticShift(f *Frame) {
	shift := int(math.Floor(10 * f.C))
	f.Stats.Shift = shift
	if shift == 0 {
		return
	}
	buf := readPixels(f.Surface, f.Bounds)
	writePixels(f.Surface, f.Bounds, ShiftChannels(buf, shift))
}

// ShiftChannels returns a copy of an RGBA byte buffer in which each pixel's red
// comes from the pixel shift positions earlier and its blue from the pixel
// shift positions later. Sources outside the buffer leave the channel as is.
// Reads always come from buf, never from already shifted output.
func ShiftChannels(buf []uint8, shift int) []uint8 {
	out := make([]uint8, len(buf))
	copy(out, buf)
	if shift == 0 {
		return out
	}
	n := len(buf) - len(buf)%4
	d := shift * 4
	for i := 0; i < n; i += 4 {
		if r := i - d; r >= 0 && r < n {
			out[i] = buf[r]
		}
		if b := i + d; b >= 0 && b < n {
			out[i+2] = buf[b+2]
		}
	}
	return out
}

// MemeFrame draws the outlined placeholder of the lost meme. Both the stroke
// and the inner panel grow stronger as clarity (1-c) rises.
func MemeFrame(f *Frame) {
	clarity := 1 - f.C
	w, h := float64(f.Width()), float64(f.Height())
	strokeRect(f.Surface, f.Bounds.Min, w*0.15, h*0.1, w*0.7, h*0.8,
		2+clarity*3, FrameStroke, 0.3+clarity*0.5)
	fillRect(f.Surface, rectF(f.Bounds.Min, w*0.17, h*0.12, w*0.66, h*0.76),
		FramePanel, 0.5+clarity*0.3)
}

// ErrorOverlay prints random error codes down the left edge once c > 0.3.
func ErrorOverlay(f *Frame) {
	if f.C <= 0.3 {
		return
	}
	f.Stats.ErrorOverlay = true
	face := f.face(12, false)
	col := color.NRGBA{R: ErrorRed.R, G: ErrorRed.G, B: ErrorRed.B, A: alpha8(f.C * 0.3)}
	for y := 20; y < f.Height(); y += 40 {
		if f.Rand.Float64() >= f.C*0.3 {
			continue
		}
		code := HexCode(f.Rand)
		x := 10 + f.Rand.Float64()*20
		if face != nil {
			drawText(f.Surface, face, "████ ERROR 0x"+code+" ████",
				dotAt(f.Bounds.Min, x, float64(y)), col)
		}
		f.Stats.ErrorLines++
	}
}

// Scanlines darkens a 1px band every 3px with the alpha returned for c.
func Scanlines(alpha func(c float64) float64) Pass {
	return func(f *Frame) {
		a := alpha(f.C)
		b := f.Bounds
		for y := b.Min.Y; y < b.Max.Y; y += 3 {
			fillRect(f.Surface, image.Rect(b.Min.X, y, b.Max.X, y+1), color.RGBA{A: 255}, a)
		}
	}
}

// Noise brightens pixels with probability 0.1c by a shared random delta on
// red, green and blue. Alpha is never touched.
func Noise(f *Frame) {
	p := 0.1 * f.C
	if p <= 0 {
		return
	}
	b := f.Bounds
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := f.Surface.Pix[f.Surface.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			if f.Rand.Float64() >= p {
				continue
			}
			delta := f.Rand.Float64() * 50
			o := x * 4
			row[o] = addClamped(row[o], delta)
			row[o+1] = addClamped(row[o+1], delta)
			row[o+2] = addClamped(row[o+2], delta)
			f.Stats.NoisyPixels++
		}
	}
}

// CorruptionBars lays full-width pink or cyan bars, one per started tenth of c.
func CorruptionBars(f *Frame) {
	w, h := float64(f.Width()), float64(f.Height())
	for k := 0; float64(k) < f.C*10; k++ {
		col := Cyan
		if f.Rand.Float64() > 0.5 {
			col = Pink
		}
		y := f.Rand.Float64() * h
		bh := 2 + f.Rand.Float64()*5
		fillRect(f.Surface, rectF(f.Bounds.Min, 0, y, w, bh), col, 0.3)
		f.Stats.Bars++
	}
}

func fillRect(dst *image.RGBA, r image.Rectangle, c color.RGBA, alpha float64) {
	r = r.Intersect(dst.Rect)
	if r.Empty() || alpha <= 0 {
		return
	}
	src := image.NewUniform(c)
	if alpha >= 1 {
		draw.Draw(dst, r, src, image.Point{}, draw.Over)
		return
	}
	mask := image.NewUniform(color.Alpha{A: alpha8(alpha)})
	draw.DrawMask(dst, r, src, image.Point{}, mask, image.Point{}, draw.Over)
}

// strokeRect outlines the rectangle with a band of width lw centered on its
// edges, as four non-overlapping fills.
func strokeRect(dst *image.RGBA, origin image.Point, x, y, w, h, lw float64, c color.RGBA, alpha float64) {
	half := lw / 2
	outer := rectF(origin, x-half, y-half, w+lw, h+lw)
	inner := rectF(origin, x+half, y+half, w-lw, h-lw)
	fillRect(dst, image.Rect(outer.Min.X, outer.Min.Y, outer.Max.X, inner.Min.Y), c, alpha)
	fillRect(dst, image.Rect(outer.Min.X, inner.Max.Y, outer.Max.X, outer.Max.Y), c, alpha)
	fillRect(dst, image.Rect(outer.Min.X, inner.Min.Y, inner.Min.X, inner.Max.Y), c, alpha)
	fillRect(dst, image.Rect(inner.Max.X, inner.Min.Y, outer.Max.X, inner.Max.Y), c, alpha)
}

func rectF(origin image.Point, x, y, w, h float64) image.Rectangle {
	r := image.Rect(
		int(math.Round(x)), int(math.Round(y)),
		int(math.Round(x+w)), int(math.Round(y+h)),
	)
	return r.Add(origin)
}

func alpha8(a float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, a)) * 255))
}

func addClamped(v uint8, delta float64) uint8 {
	return uint8(math.Min(255, float64(v)+delta))
}

func readPixels(img *image.RGBA, r image.Rectangle) []uint8 {
	stride := r.Dx() * 4
	buf := make([]uint8, stride*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		o := img.PixOffset(r.Min.X, y)
		copy(buf[(y-r.Min.Y)*stride:], img.Pix[o:o+stride])
	}
	return buf
}

func writePixels(img *image.RGBA, r image.Rectangle, buf []uint8) {
	stride := r.Dx() * 4
	for y := r.Min.Y; y < r.Max.Y; y++ {
		o := img.PixOffset(r.Min.X, y)
		copy(img.Pix[o:o+stride], buf[(y-r.Min.Y)*stride:])
	}
}
