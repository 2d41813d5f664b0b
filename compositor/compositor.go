// Package compositor renders the procedural corruption frames shown on the
// restoration canvas and in the final reveal.
//
// A frame is rebuilt from scratch on a CPU raster every call. The only state
// that survives between calls is the surface itself, which the smear and
// datamosh passes deliberately resample.
package compositor

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
)

// FaceSource supplies font faces by pixel size.
type FaceSource interface {
	Face(size float64, bold bool) font.Face
}

// Pass is one compositing step of a Profile.
type Pass func(f *Frame)

// Profile is the pluggable content of a Compositor: background color and the
// ordered passes that paint over it.
type Profile struct {
	Name       string
	Background color.RGBA
	Passes     []Pass
}

// Stats describes the most recent frame.
type Stats struct {
	Frames           int
	Blocks           int
	SmearedStrips    int
	MoshedTiles      int
	Shift            int
	VisibleFragments int
	ErrorOverlay     bool
	ErrorLines       int
	NoisyPixels      int
	Bars             int
}

// Frame is the render context handed to every pass of a single call.
type Frame struct {
	Surface *image.RGBA
	Bounds  image.Rectangle
	C       float64 // corruption fraction in [0,1]
	Active  bool
	Rand    Random
	Faces   FaceSource
	Profile *Profile
	Stats   *Stats
}

// Width returns the surface width in pixels.
func (f *Frame) Width() int { return f.Bounds.Dx() }

// Height returns the surface height in pixels.
func (f *Frame) Height() int { return f.Bounds.Dy() }

func (f *Frame) face(size float64, bold bool) font.Face {
	if f.Faces == nil {
		return nil
	}
	return f.Faces.Face(size, bold)
}

// Compositor renders a Profile onto caller-owned surfaces. It is not safe for
// concurrent use; the host renders at most one frame at a time.
type Compositor struct {
	Profile Profile
	Rand    Random
	Faces   FaceSource

	frames int
	stats  Stats
}

// New creates a compositor for profile using the ambient random source.
func New(profile Profile, faces FaceSource) *Compositor {
	return &Compositor{
		Profile: profile,
		Rand:    Ambient,
		Faces:   faces,
	}
}

// Render fully repaints surface for the given corruption level (0-100).
// Out-of-range levels are clamped. A nil or empty surface skips the frame.
func (c *Compositor) Render(surface *image.RGBA, level float64, active bool) {
	if surface == nil || surface.Rect.Empty() {
		return
	}

	rnd := c.Rand
	if rnd == nil {
		rnd = Ambient
	}

	c.frames++
	c.stats = Stats{Frames: c.frames}

	f := &Frame{
		Surface: surface,
		Bounds:  surface.Rect,
		C:       Fraction(level),
		Active:  active,
		Rand:    rnd,
		Faces:   c.Faces,
		Profile: &c.Profile,
		Stats:   &c.stats,
	}
	for _, pass := range c.Profile.Passes {
		pass(f)
	}
}

// Stats returns the statistics of the last rendered frame.
func (c *Compositor) Stats() Stats {
	return c.stats
}

// Fraction clamps a 0-100 level and converts it to the [0,1] corruption fraction.
func Fraction(level float64) float64 {
	if math.IsNaN(level) {
		return 0
	}
	return math.Max(0, math.Min(100, level)) / 100
}
