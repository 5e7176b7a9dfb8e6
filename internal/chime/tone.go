package chime

import (
	"math"

	"github.com/faiface/beep"
)

// tone sums sine partials under a short attack and a linear release.
type tone struct {
	sr    beep.SampleRate
	freqs []float64
	gain  float64
	total int
	pos   int
}

func newTone(sr beep.SampleRate, total int, freqs []float64, gain float64) *tone {
	return &tone{sr: sr, freqs: freqs, gain: gain, total: total}
}

func (g *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.0
		for k, f := range g.freqs {
			sample += math.Sin(2*math.Pi*f*t) / float64(k+1)
		}
		sample *= g.gain * g.envelope()

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *tone) Err() error {
	return nil
}

func (g *tone) envelope() float64 {
	attack := math.Min(float64(g.pos)/float64(g.sr)/0.005, 1.0)
	if g.total <= 0 {
		return attack
	}
	release := 1 - float64(g.pos)/float64(g.total)
	return attack * math.Max(release, 0)
}
