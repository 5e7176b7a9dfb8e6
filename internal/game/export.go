package game

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/thorn/internal/canvas"
	"github.com/iburimskiy/thorn/internal/chime"
	"github.com/iburimskiy/thorn/internal/config"
)

var errNothingRendered = errors.New("nothing rendered yet")

var (
	pngFilter  = zenity.FileFilters{{Name: "PNG image", Patterns: []string{"*.png"}}}
	jsonFilter = zenity.FileFilters{{Name: "Thorn preset", Patterns: []string{"*.json"}}}
)

// saveImage asks for a file name and writes the raster that is on screen.
// The same raster the last pass drew on is exported, never a redraw.
func (g *game) saveImage() {
	if g.raster == nil {
		g.fail(errNothingRendered)
		return
	}
	name := fmt.Sprintf("thorn-%d.png", g.seed)
	path, err := zenity.SelectFileSave(
		zenity.Title("Save image"),
		zenity.Filename(name),
		zenity.ConfirmOverwrite(),
		pngFilter,
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			g.fail(err)
		}
		return
	}
	path = withExt(path, ".png")

	if err := g.raster.Export(canvas.PNGFile(path)); err != nil {
		g.fail(err)
		return
	}
	g.log.Info("saved %s", path)
	g.chime.Play(chime.CueSaved)
}

func (g *game) loadPreset() {
	path, err := zenity.SelectFile(
		zenity.Title("Load preset"),
		jsonFilter,
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			g.fail(err)
		}
		return
	}
	cfg, err := config.LoadFile(path, g.cfg)
	if err != nil {
		g.fail(err)
		return
	}
	if err := cfg.Validate(); err != nil {
		g.fail(fmt.Errorf("preset %s: %w", filepath.Base(path), err))
		return
	}
	g.cfg = cfg
	g.followSize = false
	g.log.Info("loaded preset %s", path)
	g.pending = requestGenerate
}

func (g *game) savePreset() {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save preset"),
		zenity.Filename("thorn.json"),
		zenity.ConfirmOverwrite(),
		jsonFilter,
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			g.fail(err)
		}
		return
	}
	path = withExt(path, ".json")
	if err := config.SaveFile(path, g.cfg); err != nil {
		g.fail(err)
		return
	}
	g.log.Info("saved preset %s", path)
	g.chime.Play(chime.CueSaved)
}

// withExt appends ext unless path already ends with it.
func withExt(path, ext string) string {
	if strings.EqualFold(filepath.Ext(path), ext) {
		return path
	}
	return path + ext
}
