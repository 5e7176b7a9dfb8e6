package turtle

import (
	"math"
	"testing"

	"github.com/iburimskiy/thorn/internal/canvas/canvastest"
	"github.com/iburimskiy/thorn/internal/random"
)

type call struct {
	rad, shaft, alp float64
	x, y            float64
}

// spy records motif calls together with the recorder's origin.
type spy struct {
	rec   *canvastest.Recorder
	calls []call
}

func (p *spy) Draw(rad, shaft, alp float64) {
	x, y, _ := p.rec.Origin()
	p.calls = append(p.calls, call{rad, shaft, alp, x, y})
}

func sketchParams() Params {
	return Params{
		Length:       400,
		Step:         180,
		Factor1:      0.85,
		Factor2:      0.8,
		Opacity:      170,
		OpacityDrift: 50,
		RedDrift:     50,
	}
}

func newSpySession(p Params, rnd random.Source) (*Session, *spy) {
	rec := canvastest.New(200, 100)
	sp := &spy{rec: rec}
	return NewSession(p, rec, sp, rnd), sp
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

// TestInterpretAxiom verifies the axiom draws one undecayed motif at the centre
func TestInterpretAxiom(t *testing.T) {
	s, sp := newSpySession(sketchParams(), &random.Sequence{})
	s.Interpret("F")

	if len(sp.calls) != 1 {
		t.Fatalf("draws = %d, want 1", len(sp.calls))
	}
	c := sp.calls[0]
	if c.rad != 400 || c.alp != 170 {
		t.Errorf("motif = %+v, want rad 400 alp 170", c)
	}
	if c.x != 100 || c.y != 50 {
		t.Errorf("origin = (%v,%v), want centre (100,50)", c.x, c.y)
	}
}

// TestInterpretDecay verifies rad and radShaft decay geometrically per F/G
func TestInterpretDecay(t *testing.T) {
	p := sketchParams()
	s, sp := newSpySession(p, &random.Sequence{})
	s.RadShaft = 300
	s.Interpret("FGxFG")

	if len(sp.calls) != 4 {
		t.Fatalf("draws = %d, want 4", len(sp.calls))
	}
	for k, c := range sp.calls {
		if !near(c.rad, 400*math.Pow(p.Factor1, float64(k))) {
			t.Errorf("draw %d rad = %v", k, c.rad)
		}
		if !near(c.shaft, 300*math.Pow(p.Factor2, float64(k))) {
			t.Errorf("draw %d shaft = %v", k, c.shaft)
		}
	}
	if !near(s.Rad, 400*math.Pow(p.Factor1, 4)) {
		t.Errorf("final rad = %v", s.Rad)
	}
}

// TestInterpretCarriesState verifies turtle state survives between passes
func TestInterpretCarriesState(t *testing.T) {
	s, sp := newSpySession(sketchParams(), &random.Sequence{})
	s.Interpret("F")
	s.Interpret("F")

	if len(sp.calls) != 2 {
		t.Fatalf("draws = %d, want 2", len(sp.calls))
	}
	if sp.calls[1].rad != 340 {
		t.Errorf("second pass rad = %v, want 340", sp.calls[1].rad)
	}
	if sp.calls[1].x != 100 || sp.calls[1].y != 50 {
		t.Errorf("second pass origin = (%v,%v), want centre", sp.calls[1].x, sp.calls[1].y)
	}
}

// TestInterpretLoops verifies + and - fan 8 arms of 3 hops with opacity drift
func TestInterpretLoops(t *testing.T) {
	seq := &random.Sequence{Values: []float64{0.5}}
	s, sp := newSpySession(sketchParams(), seq)
	s.Interpret("+")

	if len(sp.calls) != 24 {
		t.Fatalf("draws = %d, want 24", len(sp.calls))
	}
	if s.Alp != 195 {
		t.Errorf("alp after + = %v, want 195", s.Alp)
	}
	// Position 0 rotates by multiples of 6π, so every arm points down.
	for n, c := range sp.calls {
		hop := float64(n%3 + 1)
		if !near(c.x, 100) || !near(c.y, 50+60*hop) {
			t.Errorf("draw %d at (%v,%v), want (100,%v)", n, c.x, c.y, 50+60*hop)
		}
		if c.alp != 195 {
			t.Errorf("draw %d alp = %v, want 195", n, c.alp)
		}
	}

	sp.calls = nil
	s.Interpret("-")
	if s.Alp != 170 {
		t.Errorf("alp after - = %v, want 170", s.Alp)
	}
	if len(sp.calls) != 24 || !near(sp.calls[2].y, 50-180) {
		t.Errorf("contract third hop y = %v, want %v", sp.calls[2].y, 50-180)
	}
}

// TestInterpretLoopAngles verifies the fan angle step shrinks along the sentence
func TestInterpretLoopAngles(t *testing.T) {
	s, sp := newSpySession(sketchParams(), &random.Sequence{})
	// '+' sits at position 2, so arm j turns by j*2π.
	s.Interpret("xy+")
	for n, c := range sp.calls {
		if !near(c.x, 100) {
			t.Fatalf("draw %d x = %v, want 100", n, c.x)
		}
	}

	sp.calls = nil
	// Position 5: arm 1 turns by π, pointing up.
	s.Interpret("xxxxx+")
	arm1 := sp.calls[3]
	if !near(arm1.x, 100) || !near(arm1.y, 50-60) {
		t.Errorf("arm 1 first hop at (%v,%v), want (100,-10)", arm1.x, arm1.y)
	}
}

// TestInterpretBracketsResetOpacity verifies [ and ] restore the base opacity
func TestInterpretBracketsResetOpacity(t *testing.T) {
	seq := &random.Sequence{Values: []float64{0.9}}
	s, _ := newSpySession(sketchParams(), seq)

	for _, sentence := range []string{"++[", "--]", "+-+[", "---]"} {
		s.Interpret(sentence)
		if s.Alp != 170 {
			t.Errorf("alp after %q = %v, want 170", sentence, s.Alp)
		}
	}
}

// TestInterpretColorDrift verifies S only moves the drift accumulator
func TestInterpretColorDrift(t *testing.T) {
	seq := &random.Sequence{Values: []float64{1}}
	s, sp := newSpySession(sketchParams(), seq)
	s.Interpret("SS")

	if len(sp.calls) != 0 {
		t.Errorf("S drew %d motifs", len(sp.calls))
	}
	if s.ColorDrift != 1000 {
		t.Errorf("ColorDrift = %v, want 1000", s.ColorDrift)
	}
	if s.Alp != 170 || s.Rad != 400 {
		t.Errorf("S changed turtle state: alp %v rad %v", s.Alp, s.Rad)
	}
}

// TestInterpretIgnoresUnknown verifies unknown symbols are no-ops
func TestInterpretIgnoresUnknown(t *testing.T) {
	seq := &random.Sequence{Values: []float64{0.3}}
	s, sp := newSpySession(sketchParams(), seq)
	s.Interpret("oXyz()!")

	if len(sp.calls) != 0 || seq.Calls() != 0 {
		t.Errorf("unknown symbols drew %d motifs and used %d random values", len(sp.calls), seq.Calls())
	}
	for _, sym := range []byte("FG+-[]S") {
		if !Known(sym) {
			t.Errorf("Known(%q) = false", sym)
		}
	}
	if Known('o') {
		t.Error("Known('o') = true")
	}
}

// TestInterpretBalancesTransform verifies every pass leaves an identity transform
func TestInterpretBalancesTransform(t *testing.T) {
	rec := canvastest.New(200, 100)
	s := NewSession(sketchParams(), rec, &spy{rec: rec}, random.New(7))
	s.Interpret("FF+-G[+F-]G[-F++]S")

	if rec.Depth != 0 {
		t.Errorf("stack depth = %d, want 0", rec.Depth)
	}
	if x, y, a := rec.Origin(); x != 0 || y != 0 || a != 0 {
		t.Errorf("origin after pass = (%v,%v,%v), want identity", x, y, a)
	}
	if rec.MaxDepth != 1 {
		t.Errorf("max depth = %d, want 1", rec.MaxDepth)
	}
}

// TestReshaft verifies the shaft is re-derived from the current radius
func TestReshaft(t *testing.T) {
	for _, v := range []float64{0, 0.5, 0.999} {
		s, _ := newSpySession(sketchParams(), &random.Sequence{Values: []float64{v}})
		s.Rad = 100
		s.Reshaft()
		want := 100 * (0.9 + 0.3*v)
		if !near(s.RadShaft, want) {
			t.Errorf("Reshaft with %v = %v, want %v", v, s.RadShaft, want)
		}
	}
}
