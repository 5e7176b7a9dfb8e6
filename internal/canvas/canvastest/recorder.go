// Package canvastest provides a recording canvas.Surface for tests.
package canvastest

import (
	"image/color"
	"math"
)

// Ellipse is one recorded Ellipse call with the transform in effect.
type Ellipse struct {
	Width, Height float64
	Fill          color.NRGBA
	// X, Y is the device origin, Angle the accumulated rotation.
	X, Y  float64
	Angle float64
}

type transform struct {
	x, y, angle float64
}

// Recorder records draw calls instead of rasterizing them. Transforms are
// tracked as translation plus rotation, which is all the pipeline uses.
type Recorder struct {
	W, H float64

	Ellipses []Ellipse
	Clears   int
	Resets   int
	Depth    int
	MaxDepth int

	cur   transform
	stack []transform
	fill  color.NRGBA
}

func New(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

func (r *Recorder) Clear(color.Color) {
	r.Clears++
	r.Ellipses = r.Ellipses[:0]
}

func (r *Recorder) ResetTransform() {
	r.Resets++
	r.cur = transform{}
	r.stack = r.stack[:0]
	r.Depth = 0
}

func (r *Recorder) Push() {
	r.stack = append(r.stack, r.cur)
	r.Depth++
	if r.Depth > r.MaxDepth {
		r.MaxDepth = r.Depth
	}
}

func (r *Recorder) Pop() {
	if len(r.stack) == 0 {
		return
	}
	r.cur = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.Depth--
}

func (r *Recorder) Translate(x, y float64) {
	s, c := math.Sincos(r.cur.angle)
	r.cur.x += c*x - s*y
	r.cur.y += s*x + c*y
}

func (r *Recorder) Rotate(theta float64) {
	r.cur.angle += theta
}

func (r *Recorder) SetFill(c color.NRGBA) { r.fill = c }

func (r *Recorder) Ellipse(w, h float64) {
	r.Ellipses = append(r.Ellipses, Ellipse{
		Width: w, Height: h, Fill: r.fill,
		X: r.cur.x, Y: r.cur.y, Angle: r.cur.angle,
	})
}

// Origin returns the current device origin and rotation.
func (r *Recorder) Origin() (x, y, angle float64) {
	return r.cur.x, r.cur.y, r.cur.angle
}
