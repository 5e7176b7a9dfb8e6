package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/thorn/internal/canvas"
	"github.com/iburimskiy/thorn/internal/chime"
	"github.com/iburimskiy/thorn/internal/config"
	"github.com/iburimskiy/thorn/internal/logger"
	"github.com/iburimskiy/thorn/internal/panel"
	"github.com/iburimskiy/thorn/internal/thorn"
)

// resizeSettle is how long the window size must stay put before the canvas
// follows it.
const resizeSettle = 300 * time.Millisecond

// previewLimit bounds either side of the texture uploaded for display. It
// stays under the texture size limit of common GPU drivers.
const previewLimit = 4096

type request int

const (
	requestNone request = iota
	// requestGenerate draws with a new seed, requestRedraw with the current one.
	requestGenerate
	requestRedraw
)

// Options wires the game to its collaborators.
type Options struct {
	Config config.Config
	Log    *logger.Logger
	Tail   *logger.Tail
	Chime  *chime.Player
	// Seed, when set, is used for the first generation instead of a random one.
	Seed *int64
}

type game struct {
	cfg   config.Config
	log   *logger.Logger
	tail  *logger.Tail
	chime *chime.Player
	panel *panel.Model

	// generation
	seeds   *rand.Rand
	seed    int64
	raster  *canvas.Raster
	view    *ebiten.Image
	result  *thorn.Result
	pending request
	dirty   bool

	// window
	winW, winH int
	resizedAt  time.Time
	followSize bool

	// button state
	hovered int
	pressed int

	lastErr error
}

func NewGame(opts Options) *game {
	log := opts.Log
	if log == nil {
		log = logger.Discard()
	}
	g := &game{
		cfg:        opts.Config,
		log:        log.WithPrefix("ui"),
		tail:       opts.Tail,
		chime:      opts.Chime,
		panel:      panel.NewModel(),
		seeds:      rand.New(rand.NewSource(time.Now().UnixNano())),
		pending:    requestGenerate,
		followSize: true,
		hovered:    -1,
		pressed:    -1,
	}
	if opts.Seed != nil {
		g.seed = *opts.Seed
		g.pending = requestRedraw
	}
	if g.chime == nil {
		g.chime = chime.NewPlayer()
	}
	return g
}

func (g *game) Update() error {
	if g.handleInput() {
		return ebiten.Termination
	}
	g.followWindow()

	switch g.pending {
	case requestGenerate:
		g.generate(true)
	case requestRedraw:
		g.generate(false)
	}
	g.pending = requestNone
	return nil
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.winW || outsideHeight != g.winH {
		g.winW, g.winH = outsideWidth, outsideHeight
		g.resizedAt = time.Now()
	}
	return outsideWidth, outsideHeight
}

// followWindow resizes the canvas to the window once the size has settled.
// An explicit Width/Height edit in the panel stops the canvas following.
func (g *game) followWindow() {
	if !g.followSize || g.winW <= 0 || g.winH <= 0 {
		return
	}
	if g.winW == g.cfg.Width && g.winH == g.cfg.Height {
		return
	}
	if time.Since(g.resizedAt) < resizeSettle {
		return
	}
	g.log.Debug("canvas follows window: %dx%d", g.winW, g.winH)
	g.cfg.Width, g.cfg.Height = g.winW, g.winH
	if g.pending == requestNone {
		g.pending = requestRedraw
	}
}

// generate runs the whole pipeline to completion. Update is the only
// caller, so a pass never starts while another is running.
func (g *game) generate(reseed bool) {
	if reseed {
		g.seed = thorn.NextSeed(g.seeds)
	}
	done := g.log.Step("generate")

	raster, res, err := thorn.Render(g.cfg, g.seed, g.log)
	if err != nil {
		g.fail(err)
		return
	}
	done()

	// Swap only after a complete pass so a failed run never shows a partial frame.
	// The display gets a bounded copy; export keeps the full raster.
	if g.view != nil {
		g.view.Deallocate()
	}
	g.raster = raster
	g.view = ebiten.NewImageFromImage(preview(raster.Image(), previewLimit))
	g.result = res
	g.dirty = false
	g.lastErr = nil
	g.chime.Play(chime.CueGenerated)
}

func (g *game) fail(err error) {
	switch {
	case errors.Is(err, thorn.ErrTooLarge):
		g.log.Warn("%v", err)
	default:
		g.log.Error("%v", err)
	}
	g.lastErr = err
	g.chime.Play(chime.CueFailed)
}
