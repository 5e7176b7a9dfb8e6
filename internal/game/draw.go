package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/thorn/internal/config"
	"github.com/iburimskiy/thorn/internal/panel"
)

var (
	panelColor    = color.RGBA{R: 18, G: 22, B: 28, A: 210}
	selectedColor = color.RGBA{R: 60, G: 80, B: 120, A: 230}
	headingColor  = color.RGBA{R: 36, G: 44, B: 58, A: 230}
	borderColor   = color.RGBA{R: 150, G: 170, B: 200, A: 255}
)

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(rgba(g.cfg.Background))

	g.drawCanvas(screen)
	if g.panel.Visible {
		g.drawPanel(screen)
		g.drawButtons(screen)
	}
	g.drawStatus(screen)
	g.drawLogTail(screen)
}

// drawCanvas shows the last finished raster scaled to fit the window.
func (g *game) drawCanvas(screen *ebiten.Image) {
	if g.view == nil {
		return
	}
	b := g.view.Bounds()
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	s := fitScale(float64(b.Dx()), float64(b.Dy()), float64(sw), float64(sh))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate((float64(sw)-float64(b.Dx())*s)/2, (float64(sh)-float64(b.Dy())*s)/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.view, op)
}

func (g *game) drawPanel(screen *ebiten.Image) {
	rows := g.panel.Rows
	h := len(rows) * config.PanelRowH
	vector.DrawFilledRect(screen, float32(config.PanelX-4), float32(config.PanelY-4),
		float32(config.PanelWidth+8), float32(h+8), panelColor, false)

	for i, row := range rows {
		y := rowY(i)
		switch {
		case row.Kind == panel.KindHeading:
			vector.DrawFilledRect(screen, float32(config.PanelX), float32(y),
				float32(config.PanelWidth), float32(config.PanelRowH-1), headingColor, false)
			ebitenutil.DebugPrintAt(screen, row.Label, config.PanelX+4, y+1)
			continue
		case i == g.panel.Selected:
			vector.DrawFilledRect(screen, float32(config.PanelX), float32(y),
				float32(config.PanelWidth), float32(config.PanelRowH-1), selectedColor, false)
		}

		value := row.Value(&g.cfg)
		if row.Kind == panel.KindText && i == g.panel.Selected {
			value += "_"
		}
		ebitenutil.DebugPrintAt(screen, "  "+row.Label, config.PanelX, y+1)
		ebitenutil.DebugPrintAt(screen, clip(value, 24), config.PanelX+120, y+1)
	}

	// color swatches next to the color headings' values
	g.drawSwatch(screen, "Background R", g.cfg.Background)
	g.drawSwatch(screen, "Flower R", g.cfg.Flower)
}

func (g *game) drawSwatch(screen *ebiten.Image, label string, c config.RGB) {
	for i, row := range g.panel.Rows {
		if row.Label != label {
			continue
		}
		x := float32(config.PanelX + config.PanelWidth - 22)
		y := float32(rowY(i) + 2)
		vector.DrawFilledRect(screen, x, y, 18, float32(3*config.PanelRowH-5), rgba(c), false)
		vector.StrokeRect(screen, x, y, 18, float32(3*config.PanelRowH-5), 1, borderColor, false)
		return
	}
}

func (g *game) drawButtons(screen *ebiten.Image) {
	for i, b := range buttons {
		x, y := g.buttonPos(i)

		var bgColor color.Color
		if g.pressed == i {
			bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
		} else if g.hovered == i {
			bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
		} else {
			bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(config.ButtonWidth), float32(config.ButtonHeight), bgColor, false)
		vector.StrokeRect(screen, float32(x), float32(y), float32(config.ButtonWidth), float32(config.ButtonHeight), 2, borderColor, false)

		textWidth := len(b.label) * 6 // debug font glyph width
		ebitenutil.DebugPrintAt(screen, b.label, x+(config.ButtonWidth-textWidth)/2, y+(config.ButtonHeight-16)/2)
	}
}

func (g *game) drawStatus(screen *ebiten.Image) {
	status := "Enter/G: generate  R: redraw  H: panel  Ctrl+S: save  Esc: quit"
	if g.result != nil {
		lens := make([]string, len(g.result.Sentences))
		for i, s := range g.result.Sentences {
			lens[i] = fmt.Sprint(len(s))
		}
		status = fmt.Sprintf("seed %d | %d motifs | symbols per pass %s | %s | %s",
			g.seed, g.result.Motifs, strings.Join(lens, "/"), formatElapsed(g.result.Elapsed), status)
	}
	if g.dirty {
		status += " | settings changed, press Generate"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 6)
}

// drawLogTail prints recent log lines along the bottom edge on a backdrop
// that fades for older lines.
func (g *game) drawLogTail(screen *ebiten.Image) {
	if g.tail == nil {
		return
	}
	lines := g.tail.Snapshot(config.LogTailSize)
	if len(lines) == 0 {
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	top := sh - len(lines)*16 - 8
	for i, line := range lines {
		a := clamp01(0.35 + 0.65*float64(i+1)/float64(len(lines)))
		vector.DrawFilledRect(screen, 0, float32(top+i*16), float32(sw), 16,
			color.RGBA{A: uint8(120 * a)}, false)
		ebitenutil.DebugPrintAt(screen, line, 12, top+i*16)
	}
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "~"
}
