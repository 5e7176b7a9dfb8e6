// Package turtle interprets a sentence as drawing and transform commands.
package turtle

import (
	"github.com/iburimskiy/thorn/internal/canvas"
	"github.com/iburimskiy/thorn/internal/random"
)

// Drawer paints one motif at the surface's current transform.
type Drawer interface {
	Draw(radius, shaft, opacity float64)
}

// Params are the configured base values a session starts from.
type Params struct {
	Length       float64 // base motif radius
	Step         float64 // loop spacing, split into three hops
	Factor1      float64 // radius multiplier per F/G
	Factor2      float64 // shaft multiplier per F/G
	Opacity      float64
	OpacityDrift float64
	RedDrift     float64
}

// Session owns the turtle state for one generation. Radius, shaft and
// opacity carry over from one Interpret call to the next; only the
// transform is reset per pass.
type Session struct {
	Rad      float64
	RadShaft float64
	Alp      float64
	// ColorDrift is nudged by S. Nothing reads it when drawing.
	ColorDrift float64
	// Draws counts motifs drawn so far.
	Draws int

	params  Params
	surface canvas.Surface
	drawer  Drawer
	rand    random.Source
}

// NewSession starts a session at the configured base values.
func NewSession(p Params, s canvas.Surface, d Drawer, rnd random.Source) *Session {
	return &Session{
		Rad:      p.Length,
		RadShaft: p.Length,
		Alp:      p.Opacity,
		params:   p,
		surface:  s,
		drawer:   d,
		rand:     rnd,
	}
}

// Reshaft derives a fresh shaft width from the current radius. It is
// called once at the start of every iteration.
func (s *Session) Reshaft() {
	s.RadShaft = s.Rad * random.Uniform(s.rand, 0.9, 1.2)
}

func (s *Session) draw() {
	s.drawer.Draw(s.Rad, s.RadShaft, s.Alp)
	s.Draws++
}
