// Package motif draws the four-lobed gradient shape placed at every turtle
// position.
package motif

import (
	"image/color"
	"math"

	"github.com/iburimskiy/thorn/internal/canvas"
	"github.com/iburimskiy/thorn/internal/random"
)

// gradientShift is how much redder the far end of the gradient is.
const gradientShift = 50

// Palette is the base flower color and the per-channel jitter applied to
// every motif.
type Palette struct {
	Base  [3]float64
	Drift [3]float64
}

type lobe struct {
	t      float64   // position along the from→to gradient
	offset float64   // x offset as a fraction of the shaft width
	turns  []float64 // rotation applied before each ellipse
}

var lobes = []lobe{
	{t: 0, offset: 0.5, turns: []float64{math.Pi}},
	{t: 0.3, offset: -0.5, turns: []float64{math.Pi}},
	// crossing wings
	{t: 0.6, turns: []float64{math.Pi / 6, -math.Pi / 3}},
	{t: 1, turns: []float64{math.Pi/2 + math.Pi/6, -math.Pi / 3}},
}

// EllipsesPerMotif is the number of Ellipse calls one Draw makes.
var EllipsesPerMotif = func() int {
	n := 0
	for _, l := range lobes {
		n += len(l.turns)
	}
	return n
}()

// Renderer draws motifs at the surface's current transform.
type Renderer struct {
	Surface canvas.Surface
	Rand    random.Source
	Palette Palette
}

// Draw paints one motif. Every lobe works inside its own Push/Pop so the
// caller's transform is unchanged afterwards.
func (r *Renderer) Draw(radius, shaft, opacity float64) {
	var jittered [3]float64
	for i := range jittered {
		d := r.Palette.Drift[i]
		jittered[i] = r.Palette.Base[i] + random.Uniform(r.Rand, -d, d)
	}
	from := [4]float64{jittered[0], jittered[1], jittered[2], opacity}
	to := [4]float64{jittered[0] + gradientShift, jittered[1], jittered[2], opacity}

	s := r.Surface
	for _, l := range lobes {
		s.Push()
		s.SetFill(Lerp(from, to, l.t))
		if l.offset != 0 {
			s.Translate(l.offset*shaft, 0)
		}
		for _, turn := range l.turns {
			s.Rotate(turn)
			s.Ellipse(shaft, radius)
		}
		s.Pop()
	}
}

// Lerp clamps both endpoints to 0..255 per channel and interpolates
// between them.
func Lerp(from, to [4]float64, t float64) color.NRGBA {
	var c [4]uint8
	for i := range c {
		a, b := clamp255(from[i]), clamp255(to[i])
		c[i] = uint8(math.Round(a + (b-a)*t))
	}
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

func clamp255(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 255:
		return 255
	}
	return v
}
