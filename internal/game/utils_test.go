package game

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/iburimskiy/thorn/internal/config"
	"github.com/iburimskiy/thorn/internal/panel"
)

// TestFitScale verifies the canvas keeps its aspect and fits the window
func TestFitScale(t *testing.T) {
	cases := []struct {
		w, h, winW, winH, want float64
	}{
		{100, 100, 200, 100, 1},
		{200, 100, 100, 100, 0.5},
		{100, 400, 1000, 200, 0.5},
		{50, 50, 200, 300, 4},
		{0, 10, 100, 100, 1},
	}
	for _, c := range cases {
		if got := fitScale(c.w, c.h, c.winW, c.winH); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("fitScale(%v, %v, %v, %v) = %v, want %v", c.w, c.h, c.winW, c.winH, got, c.want)
		}
	}
}

// TestHits verifies rectangle hit tests include the border
func TestHits(t *testing.T) {
	if !hits(10, 10, 10, 10, 5, 5) || !hits(15, 15, 10, 10, 5, 5) {
		t.Error("border points should hit")
	}
	if hits(9, 12, 10, 10, 5, 5) || hits(12, 16, 10, 10, 5, 5) {
		t.Error("outside points should miss")
	}
}

// TestWithExt verifies extensions are added once, ignoring case
func TestWithExt(t *testing.T) {
	cases := map[string]string{
		"flower":        "flower.png",
		"flower.png":    "flower.png",
		"flower.PNG":    "flower.PNG",
		"flower.json":   "flower.json.png",
		"dir.v2/flower": "dir.v2/flower.png",
	}
	for in, want := range cases {
		if got := withExt(in, ".png"); got != want {
			t.Errorf("withExt(%q) = %q, want %q", in, got, want)
		}
	}
}

// TestButtonLayout verifies buttons sit below the panel rows and round trip
// through the hit test
func TestButtonLayout(t *testing.T) {
	g := &game{panel: panel.NewModel()}
	perRow := (config.PanelWidth + config.ButtonSpacing) / (config.ButtonWidth + config.ButtonSpacing)
	top := rowY(len(g.panel.Rows)) + config.ButtonSpacing

	if x, y := g.buttonPos(0); x != config.PanelX || y != top {
		t.Errorf("first button at (%d, %d), want (%d, %d)", x, y, config.PanelX, top)
	}
	if x, y := g.buttonPos(perRow); x != config.PanelX || y != top+config.ButtonHeight+config.ButtonSpacing {
		t.Errorf("button %d at (%d, %d), want start of second line", perRow, x, y)
	}
	for i := range buttons {
		x, y := g.buttonPos(i)
		if got := g.buttonAt(x+1, y+1); got != i {
			t.Errorf("buttonAt(button %d) = %d", i, got)
		}
		if x+config.ButtonWidth > config.PanelX+config.PanelWidth {
			t.Errorf("button %d overflows the panel", i)
		}
	}

	g.panel.Visible = false
	x, y := g.buttonPos(0)
	if got := g.buttonAt(x+1, y+1); got != -1 {
		t.Errorf("hidden panel buttonAt = %d, want -1", got)
	}
}

// TestPreviewBounds verifies oversized rasters are scaled down for display
// and small ones are passed through
func TestPreviewBounds(t *testing.T) {
	small := image.NewRGBA(image.Rect(0, 0, 300, 200))
	if got := preview(small, 4096); got != small {
		t.Error("small raster was copied")
	}

	big := image.NewRGBA(image.Rect(0, 0, 10000, 2500))
	for i := range big.Pix {
		big.Pix[i] = 255
	}
	got := preview(big, 4096)
	if b := got.Bounds(); b.Dx() != 4096 || b.Dy() != 1024 {
		t.Fatalf("preview bounds = %v, want 4096x1024", b)
	}
	if px := got.RGBAAt(2048, 512); px != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("preview pixel = %v, want white", px)
	}
}
