// Package thorn runs the flower pipeline: rewrite the axiom once per
// iteration and render every intermediate sentence on top of the last.
package thorn

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/iburimskiy/thorn/internal/canvas"
	"github.com/iburimskiy/thorn/internal/config"
	"github.com/iburimskiy/thorn/internal/logger"
	"github.com/iburimskiy/thorn/internal/lsystem"
	"github.com/iburimskiy/thorn/internal/motif"
	"github.com/iburimskiy/thorn/internal/random"
	"github.com/iburimskiy/thorn/internal/turtle"
)

var ErrTooLarge = errors.New("generation too large")

// Options is everything one generation reads.
type Options struct {
	Rules      []lsystem.Rule
	Iterations int
	Turtle     turtle.Params
	Palette    motif.Palette
	Background color.Color
	// MaxSentence caps every sentence's length; 0 means no cap.
	MaxSentence int
}

// FromConfig maps the panel settings onto pipeline options.
func FromConfig(c config.Config) Options {
	return Options{
		Rules:      c.Rules(),
		Iterations: c.Iterations,
		Turtle: turtle.Params{
			Length:       c.Length,
			Step:         c.Step,
			Factor1:      c.Factor1,
			Factor2:      c.Factor2,
			Opacity:      c.Opacity,
			OpacityDrift: c.OpacityDrift,
			RedDrift:     c.RedDrift,
		},
		Palette: motif.Palette{
			Base:  [3]float64{float64(c.Flower[0]), float64(c.Flower[1]), float64(c.Flower[2])},
			Drift: [3]float64{c.RedDrift, c.GreenDrift, c.BlueDrift},
		},
		Background:  color.NRGBA{R: c.Background[0], G: c.Background[1], B: c.Background[2], A: 255},
		MaxSentence: c.MaxSentence,
	}
}

// Result describes a finished generation.
type Result struct {
	Seed int64
	// Sentences holds the sentence drawn in each pass, in order.
	Sentences []string
	Motifs    int
	// ColorDrift is the final S accumulator value.
	ColorDrift float64
	Elapsed    time.Duration
}

// Generator is not safe for concurrent or reentrant use; a caller must
// let one Generate finish before starting the next.
type Generator struct {
	opts  Options
	rules *lsystem.RuleTable
	log   *logger.Logger
}

// New validates opts and builds the rule table.
func New(opts Options, log *logger.Logger) (*Generator, error) {
	if opts.Iterations < 0 {
		return nil, fmt.Errorf("iterations %d must not be negative", opts.Iterations)
	}
	rules, err := lsystem.NewRuleTable(opts.Rules...)
	if err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	if log == nil {
		log = logger.Discard()
	}
	if opts.Background == nil {
		opts.Background = color.Black
	}
	return &Generator{opts: opts, rules: rules, log: log}, nil
}

// Expand returns the sentence for every pass. With zero iterations the
// axiom itself is the only pass. It fails before allocating a sentence
// longer than MaxSentence.
func (g *Generator) Expand() ([]string, error) {
	if g.opts.Iterations == 0 {
		return []string{lsystem.Axiom}, nil
	}
	sentences := make([]string, 0, g.opts.Iterations)
	s := lsystem.Axiom
	for i := 0; i < g.opts.Iterations; i++ {
		if limit := g.opts.MaxSentence; limit > 0 {
			if n := lsystem.NextLen(s, g.rules); n > limit {
				return nil, fmt.Errorf("iteration %d would produce %d symbols (limit %d): %w", i+1, n, limit, ErrTooLarge)
			}
		}
		s = lsystem.Rewrite(s, g.rules)
		sentences = append(sentences, s)
	}
	return sentences, nil
}

// Generate clears surface and draws every pass with a source seeded by
// seed. Sizing problems are reported before the surface is touched.
func (g *Generator) Generate(surface canvas.Surface, seed int64) (*Result, error) {
	if w, h := surface.Size(); w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%vx%v: %w", w, h, canvas.ErrEmptySurface)
	}
	sentences, err := g.Expand()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rnd := random.New(seed)
	renderer := &motif.Renderer{Surface: surface, Rand: rnd, Palette: g.opts.Palette}
	session := turtle.NewSession(g.opts.Turtle, surface, renderer, rnd)

	surface.Clear(g.opts.Background)
	for i, s := range sentences {
		session.Reshaft()
		session.Interpret(s)
		g.log.Debug("pass %d: %d symbols, %d motifs so far", i+1, len(s), session.Draws)
	}

	res := &Result{
		Seed:       seed,
		Sentences:  sentences,
		Motifs:     session.Draws,
		ColorDrift: session.ColorDrift,
		Elapsed:    time.Since(start),
	}
	g.log.Info("seed %d: %d passes, %d motifs in %v", seed, len(sentences), res.Motifs, res.Elapsed.Round(time.Millisecond))
	return res, nil
}

// Render validates cfg and draws one generation for seed on a fresh raster.
// Nothing is returned unless the whole pass completed.
func Render(cfg config.Config, seed int64, log *logger.Logger) (*canvas.Raster, *Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	gen, err := New(FromConfig(cfg), log)
	if err != nil {
		return nil, nil, err
	}
	raster, err := canvas.NewRaster(cfg.Width, cfg.Height, cfg.Density)
	if err != nil {
		return nil, nil, err
	}
	res, err := gen.Generate(raster, seed)
	if err != nil {
		return nil, nil, err
	}
	return raster, res, nil
}
