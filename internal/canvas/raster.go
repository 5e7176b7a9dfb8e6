package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
)

// kappa places cubic control points so four segments approximate a quarter ellipse each.
const kappa = 0.5522847498307936

// pathExtent is the largest device-space extent drawn as a flattened path.
// Bigger ellipses are filled row by row instead.
const pathExtent = 1 << 14

// Raster is a Surface backed by an RGBA image. The image holds
// density device pixels per logical pixel.
type Raster struct {
	img     *image.RGBA
	width   int
	height  int
	density float64

	m     f64.Aff3
	stack []f64.Aff3
	fill  color.NRGBA

	rz *vector.Rasterizer
}

// NewRaster allocates a surface of width x height logical pixels.
func NewRaster(width, height int, density float64) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrEmptySurface)
	}
	if density <= 0 || math.IsNaN(density) {
		return nil, fmt.Errorf("density %v: %w", density, ErrEmptySurface)
	}
	dw := int(math.Ceil(float64(width) * density))
	dh := int(math.Ceil(float64(height) * density))
	r := &Raster{
		img:     image.NewRGBA(image.Rect(0, 0, dw, dh)),
		width:   width,
		height:  height,
		density: density,
		rz:      vector.NewRasterizer(1, 1),
	}
	r.rz.DrawOp = draw.Over
	r.ResetTransform()
	return r, nil
}

func (r *Raster) Size() (float64, float64) {
	return float64(r.width), float64(r.height)
}

// Density reports device pixels per logical pixel.
func (r *Raster) Density() float64 { return r.density }

// Image returns the backing image. It is the exact surface that was drawn on.
func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Clear(c color.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (r *Raster) ResetTransform() {
	r.m = f64.Aff3{r.density, 0, 0, 0, r.density, 0}
	r.stack = r.stack[:0]
}

func (r *Raster) Push() {
	r.stack = append(r.stack, r.m)
}

// Pop restores the last pushed transform. An unbalanced Pop is ignored.
func (r *Raster) Pop() {
	if len(r.stack) == 0 {
		return
	}
	r.m = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Raster) Translate(x, y float64) {
	r.m = mul(r.m, f64.Aff3{1, 0, x, 0, 1, y})
}

func (r *Raster) Rotate(theta float64) {
	s, c := math.Sincos(theta)
	r.m = mul(r.m, f64.Aff3{c, -s, 0, s, c, 0})
}

func (r *Raster) SetFill(c color.NRGBA) {
	r.fill = c
}

func (r *Raster) Ellipse(width, height float64) {
	a, b := math.Abs(width)/2, math.Abs(height)/2
	if a == 0 || b == 0 || r.fill.A == 0 {
		return
	}
	ka, kb := kappa*a, kappa*b
	local := [13][2]float64{
		{a, 0},
		{a, kb}, {ka, b}, {0, b},
		{-ka, b}, {-a, kb}, {-a, 0},
		{-a, -kb}, {-ka, -b}, {0, -b},
		{ka, -b}, {a, -kb}, {a, 0},
	}

	var pts [13][2]float64
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i, p := range local {
		x, y := apply(r.m, p[0], p[1])
		if !finite(x) || !finite(y) {
			return
		}
		pts[i] = [2]float64{x, y}
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}

	// Clip in float space first; huge shapes would overflow int.
	bounds := r.img.Bounds()
	x0 := math.Max(math.Floor(minX), float64(bounds.Min.X))
	y0 := math.Max(math.Floor(minY), float64(bounds.Min.Y))
	x1 := math.Min(math.Ceil(maxX)+1, float64(bounds.Max.X))
	y1 := math.Min(math.Ceil(maxY)+1, float64(bounds.Max.Y))
	if x0 >= x1 || y0 >= y1 {
		return
	}
	bbox := image.Rect(int(x0), int(y0), int(x1), int(y1))

	if maxX-minX > pathExtent || maxY-minY > pathExtent {
		r.fillSpans(bbox, a, b)
		return
	}

	// Rasterize only the covered region; the rasterizer origin is bbox.Min.
	ox, oy := float64(bbox.Min.X), float64(bbox.Min.Y)
	pt := func(i int) (float32, float32) {
		return float32(pts[i][0] - ox), float32(pts[i][1] - oy)
	}
	r.rz.Reset(bbox.Dx(), bbox.Dy())
	r.rz.DrawOp = draw.Over
	r.rz.MoveTo(pt(0))
	for i := 1; i < len(pts); i += 3 {
		bx, by := pt(i)
		cx, cy := pt(i + 1)
		dx, dy := pt(i + 2)
		r.rz.CubeTo(bx, by, cx, cy, dx, dy)
	}
	r.rz.ClosePath()
	r.rz.Draw(r.img, bbox, image.NewUniform(r.fill), image.Point{})
}

// fillSpans fills the ellipse with semi-axes a, b one device row at a time,
// solving for where each row's centre line crosses the outline.
func (r *Raster) fillSpans(bbox image.Rectangle, a, b float64) {
	inv, ok := invert(r.m)
	if !ok {
		return
	}
	src := image.NewUniform(r.fill)

	inside := func(x, y float64) bool {
		u, v := apply(inv, x, y)
		u, v = u/a, v/b
		return u*u+v*v <= 1
	}
	minX, minY := float64(bbox.Min.X), float64(bbox.Min.Y)
	maxX, maxY := float64(bbox.Max.X), float64(bbox.Max.Y)
	// The ellipse is convex, so four covered corners cover the whole box.
	if inside(minX, minY) && inside(maxX, minY) && inside(minX, maxY) && inside(maxX, maxY) {
		draw.Draw(r.img, bbox, src, image.Point{}, draw.Over)
		return
	}

	for py := bbox.Min.Y; py < bbox.Max.Y; py++ {
		lo, hi, ok := span(inv, float64(py)+0.5, a, b)
		if !ok {
			continue
		}
		lo, hi = math.Max(lo, minX), math.Min(hi, maxX)
		if lo >= hi {
			continue
		}
		r.fillRow(py, lo, hi, src)
	}
}

// span returns the x range where the horizontal line at y lies inside the
// ellipse, in device coordinates. inv maps device space to ellipse space.
func span(inv f64.Aff3, y, a, b float64) (float64, float64, bool) {
	p, q := inv[0]/a, (inv[1]*y+inv[2])/a
	s, t := inv[3]/b, (inv[4]*y+inv[5])/b

	qa := p*p + s*s
	qc := q*q + t*t - 1
	if qa == 0 {
		if qc <= 0 {
			return math.Inf(-1), math.Inf(1), true
		}
		return 0, 0, false
	}
	qb := 2 * (p*q + s*t)
	disc := qb*qb - 4*qa*qc
	if disc < 0 || !finite(disc) {
		return 0, 0, false
	}
	root := math.Sqrt(disc)
	return (-qb - root) / (2 * qa), (-qb + root) / (2 * qa), true
}

// fillRow paints [lo, hi) of row py. Partly covered end pixels are blended
// by the covered fraction.
func (r *Raster) fillRow(py int, lo, hi float64, src image.Image) {
	l, h := math.Ceil(lo), math.Floor(hi)
	if l > h {
		r.blendPixel(int(math.Floor(lo)), py, hi-lo, src)
		return
	}
	if l > lo {
		r.blendPixel(int(l)-1, py, l-lo, src)
	}
	if h > l {
		draw.Draw(r.img, image.Rect(int(l), py, int(h), py+1), src, image.Point{}, draw.Over)
	}
	if hi > h {
		r.blendPixel(int(h), py, hi-h, src)
	}
}

func (r *Raster) blendPixel(x, y int, coverage float64, src image.Image) {
	mask := image.NewUniform(color.Alpha{A: uint8(math.Round(255 * math.Min(coverage, 1)))})
	draw.DrawMask(r.img, image.Rect(x, y, x+1, y+1), src, image.Point{}, mask, image.Point{}, draw.Over)
}

// invert returns the inverse of m, or false when m is singular.
func invert(m f64.Aff3) (f64.Aff3, bool) {
	det := m[0]*m[4] - m[1]*m[3]
	if det == 0 || !finite(det) {
		return f64.Aff3{}, false
	}
	return f64.Aff3{
		m[4] / det, -m[1] / det, (m[1]*m[5] - m[2]*m[4]) / det,
		-m[3] / det, m[0] / det, (m[2]*m[3] - m[0]*m[5]) / det,
	}, true
}

// mul returns m·n, i.e. n is applied first.
func mul(m, n f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		m[0]*n[0] + m[1]*n[3], m[0]*n[1] + m[1]*n[4], m[0]*n[2] + m[1]*n[5] + m[2],
		m[3]*n[0] + m[4]*n[3], m[3]*n[1] + m[4]*n[4], m[3]*n[2] + m[4]*n[5] + m[5],
	}
}

func apply(m f64.Aff3, x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
