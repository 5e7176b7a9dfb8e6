package turtle

import (
	"math"

	"github.com/iburimskiy/thorn/internal/random"
)

const (
	loopArms = 8 // j = 0..7
	loopHops = 3 // k = 1..3
)

// action handles one symbol; i is its position in the sentence.
type action func(s *Session, i int)

var actions = map[byte]action{
	'F': grow,
	'G': grow,
	'+': expand,
	'-': contract,
	'[': resetOpacity,
	']': resetOpacity,
	'S': nudgeColor,
}

// Known reports whether sym has an action. Other symbols are skipped.
func Known(sym byte) bool {
	_, ok := actions[sym]
	return ok
}

// Interpret walks the sentence once from the centre of the surface.
func (s *Session) Interpret(sentence string) {
	w, h := s.surface.Size()
	s.surface.ResetTransform()
	s.surface.Translate(w/2, h/2)

	for i := 0; i < len(sentence); i++ {
		if act, ok := actions[sentence[i]]; ok {
			act(s, i)
		}
	}

	s.surface.ResetTransform()
}

func grow(s *Session, _ int) {
	s.draw()
	s.Rad *= s.params.Factor1
	s.RadShaft *= s.params.Factor2
}

func expand(s *Session, i int) {
	s.Alp += random.Upto(s.rand, s.params.OpacityDrift)
	s.loop(i, s.params.Step/3)
}

func contract(s *Session, i int) {
	s.Alp -= random.Upto(s.rand, s.params.OpacityDrift)
	s.loop(i, -s.params.Step/3)
}

// loop fans eight arms around the origin. The angular step shrinks with the
// symbol's position, so later symbols draw tighter fans.
func (s *Session) loop(i int, hop float64) {
	for j := 0; j < loopArms; j++ {
		s.surface.Push()
		s.surface.Rotate(float64(j) * 6 * math.Pi / float64(i+1))
		for k := 1; k <= loopHops; k++ {
			s.surface.Translate(0, hop)
			s.draw()
		}
		s.surface.Pop()
	}
}

func resetOpacity(s *Session, _ int) {
	s.Alp = s.params.Opacity
}

func nudgeColor(s *Session, _ int) {
	d := s.params.RedDrift
	s.ColorDrift += 10 * random.Uniform(s.rand, -d, d)
}
