package chime

import (
	"math"
	"testing"

	"github.com/faiface/beep"
)

// TestToneEnvelope verifies tones start silent, stay bounded and fade out
func TestToneEnvelope(t *testing.T) {
	sr := beep.SampleRate(44100)
	n := sr.N(cues[CueFailed].duration)
	spec := cues[CueFailed]
	g := newTone(sr, n, spec.freqs, spec.gain)

	buf := make([][2]float64, n)
	got, ok := g.Stream(buf)
	if got != n || !ok {
		t.Fatalf("Stream = %d, %v; want %d, true", got, ok, n)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, want 0", buf[0][0])
	}
	limit := spec.gain * (1 + 0.5 + 1.0/3)
	for i, s := range buf {
		if math.Abs(s[0]) > limit+1e-9 || s[0] != s[1] {
			t.Fatalf("sample %d = %v out of range or not mono", i, s)
		}
	}
	if last := math.Abs(buf[n-1][0]); last > 0.01 {
		t.Errorf("last sample = %v, want faded out", last)
	}
	if g.Err() != nil {
		t.Error("tone reported an error")
	}
}

// TestTakeLimitsTone verifies a cue stream ends after its duration
func TestTakeLimitsTone(t *testing.T) {
	n := sampleRate.N(cues[CueGenerated].duration)
	s := beep.Take(n, newTone(sampleRate, n, cues[CueGenerated].freqs, 0.1))

	buf := make([][2]float64, 512)
	total := 0
	for {
		got, ok := s.Stream(buf)
		total += got
		if !ok {
			break
		}
	}
	if total != n {
		t.Errorf("streamed %d samples, want %d", total, n)
	}
}

// TestPlayerUninitialized verifies Play and Close are no-ops without a device
func TestPlayerUninitialized(t *testing.T) {
	p := NewPlayer()
	if p.Enabled() {
		t.Fatal("new player reports enabled")
	}
	p.Play(CueGenerated)
	p.Play(Cue(99))
	p.Close()
	if p.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers, want 0", p.mixer.Len())
	}
}

// TestCuesDefined verifies every cue has a playable spec
func TestCuesDefined(t *testing.T) {
	for _, c := range []Cue{CueGenerated, CueSaved, CueFailed} {
		spec, ok := cues[c]
		if !ok || len(spec.freqs) == 0 || spec.duration <= 0 || spec.gain <= 0 {
			t.Errorf("cue %d spec = %+v", c, spec)
		}
	}
}
