package game

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/iburimskiy/thorn/internal/config"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatElapsed formats a render time as seconds with millisecond precision
func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.3fs", d.Seconds())
}

func rgba(c config.RGB) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}

// fitScale returns the scale that fits a w x h image inside the window.
func fitScale(w, h, winW, winH float64) float64 {
	if w <= 0 || h <= 0 {
		return 1
	}
	s := winW / w
	if hs := winH / h; hs < s {
		s = hs
	}
	return s
}

// hits reports whether the point lies inside the rectangle.
func hits(px, py, x, y, w, h int) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}

// preview returns src scaled down to fit a limit x limit box, or src itself
// when it already fits.
func preview(src *image.RGBA, limit int) *image.RGBA {
	b := src.Bounds()
	s := fitScale(float64(b.Dx()), float64(b.Dy()), float64(limit), float64(limit))
	if s >= 1 {
		return src
	}
	w := max(1, int(math.Round(float64(b.Dx())*s)))
	h := max(1, int(math.Round(float64(b.Dy())*s)))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}
