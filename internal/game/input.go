package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/thorn/internal/config"
	"github.com/iburimskiy/thorn/internal/panel"
)

type button struct {
	label  string
	action func(g *game)
}

var buttons = []button{
	{"Generate", func(g *game) { g.pending = requestGenerate }},
	{"Redraw", func(g *game) { g.pending = requestRedraw }},
	{"Save", func(g *game) { g.saveImage() }},
	{"Load preset", func(g *game) { g.loadPreset() }},
	{"Save preset", func(g *game) { g.savePreset() }},
	{"Reset", func(g *game) { g.resetConfig() }},
}

// handleInput processes one tick of mouse and keyboard input and reports
// whether the user asked to quit.
func (g *game) handleInput() bool {
	mouseX, mouseY := ebiten.CursorPosition()

	g.hovered = g.buttonAt(mouseX, mouseY)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pressed = g.hovered
		if i := g.rowAt(mouseX, mouseY); i >= 0 {
			g.panel.Select(i)
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.pressed >= 0 && g.pressed == g.hovered {
			buttons[g.pressed].action(g)
		}
		g.pressed = -1
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		if i := g.rowAt(mouseX, mouseY); i >= 0 && g.panel.Select(i) {
			steps := 1
			if dy < 0 {
				steps = -1
			}
			g.nudge(steps)
		}
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	switch {
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.saveImage()
		return false
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.loadPreset()
		return false
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.panel.Selected < 0 {
			return true
		}
		g.panel.Selected = -1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.pending = requestGenerate
	}
	if repeating(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.panel.Move(1)
	}
	if repeating(ebiten.KeyArrowUp) {
		g.panel.Move(-1)
	}

	if g.panel.Editing() {
		row, _ := g.panel.Current()
		if row.Type(&g.cfg, ebiten.AppendInputChars(nil)) {
			g.changed(row)
		}
		if repeating(ebiten.KeyBackspace) && row.Backspace(&g.cfg) {
			g.changed(row)
		}
		return false
	}

	coarse := 1
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		coarse = 10
	}
	if repeating(ebiten.KeyArrowRight) {
		g.nudge(coarse)
	}
	if repeating(ebiten.KeyArrowLeft) {
		g.nudge(-coarse)
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		g.pending = requestGenerate
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.pending = requestRedraw
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		g.panel.Visible = !g.panel.Visible
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return true
	}
	return false
}

// repeating is true on the first tick of a press and then periodically
// while the key is held.
func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d >= 30 && d%4 == 0)
}

func (g *game) nudge(steps int) {
	row, ok := g.panel.Current()
	if !ok {
		return
	}
	if row.Nudge(&g.cfg, steps) {
		g.changed(row)
	}
}

// changed records an edit. Size and iteration edits regenerate at once
// with a new seed; everything else waits for Generate.
func (g *game) changed(row panel.Row) {
	g.dirty = true
	if row.Label == "Width" || row.Label == "Height" {
		g.followSize = false
	}
	if row.Reseed {
		g.pending = requestGenerate
	}
	if err := g.cfg.Validate(); err != nil {
		g.lastErr = err
	} else {
		g.lastErr = nil
	}
}

func (g *game) resetConfig() {
	density, audio := g.cfg.Density, g.cfg.Audio
	g.cfg = config.Default()
	g.cfg.Density, g.cfg.Audio = density, audio
	g.followSize = true
	g.cfg.Width, g.cfg.Height = g.winW, g.winH
	g.log.Info("settings reset to defaults")
	g.pending = requestGenerate
}

// rowAt returns the panel row under the cursor, or -1.
func (g *game) rowAt(x, y int) int {
	if !g.panel.Visible {
		return -1
	}
	for i := range g.panel.Rows {
		if hits(x, y, config.PanelX, rowY(i), config.PanelWidth, config.PanelRowH-1) {
			return i
		}
	}
	return -1
}

// buttonAt returns the index of the button under the cursor, or -1.
func (g *game) buttonAt(x, y int) int {
	if !g.panel.Visible {
		return -1
	}
	for i := range buttons {
		bx, by := g.buttonPos(i)
		if hits(x, y, bx, by, config.ButtonWidth, config.ButtonHeight) {
			return i
		}
	}
	return -1
}

func rowY(i int) int {
	return config.PanelY + i*config.PanelRowH
}

func (g *game) buttonPos(i int) (int, int) {
	perRow := (config.PanelWidth + config.ButtonSpacing) / (config.ButtonWidth + config.ButtonSpacing)
	top := rowY(len(g.panel.Rows)) + config.ButtonSpacing
	x := config.PanelX + (i%perRow)*(config.ButtonWidth+config.ButtonSpacing)
	y := top + (i/perRow)*(config.ButtonHeight+config.ButtonSpacing)
	return x, y
}
