// Package chime plays short audible cues for generation results.
package chime

import (
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue selects which sound to play.
type Cue int

const (
	CueGenerated Cue = iota
	CueSaved
	CueFailed
)

type cueSpec struct {
	freqs    []float64
	duration time.Duration
	gain     float64
}

var cues = map[Cue]cueSpec{
	CueGenerated: {freqs: []float64{660, 990}, duration: 180 * time.Millisecond, gain: 0.12},
	CueSaved:     {freqs: []float64{880, 1320}, duration: 120 * time.Millisecond, gain: 0.1},
	CueFailed:    {freqs: []float64{120, 240, 360}, duration: 150 * time.Millisecond, gain: 0.2},
}

// Player owns the speaker. Until Initialize succeeds every Play is a no-op.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device and starts the mixer.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether the device is open.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play queues a cue on the mixer.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	spec, ok := cues[c]
	if !ok {
		return
	}
	n := sampleRate.N(spec.duration)
	speaker.Lock()
	p.mixer.Add(beep.Take(n, newTone(sampleRate, n, spec.freqs, spec.gain)))
	speaker.Unlock()
}

// Close silences pending cues.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
